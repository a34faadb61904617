// Package identitytoolkit provides an identity.Provider implementation backed
// by the Identity Toolkit REST API used by Firebase Authentication.
package identitytoolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"seoeval/pkg/domain"
	"seoeval/pkg/identity"
	"seoeval/pkg/serrors"
	"strings"
)

// DefaultBaseURL is the public Identity Toolkit endpoint.
const DefaultBaseURL = "https://identitytoolkit.googleapis.com"

// Client talks to the Identity Toolkit REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API root without the version segment
	apiKey     string       // apiKey is the web API key of the project
}

// Ensure Client conforms to the identity.Provider interface at compile time.
var _ identity.Provider = (*Client)(nil)

// New constructs a Client. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type credentialsReq struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountRes struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

func (r accountRes) toDomain() *domain.User {
	return &domain.User{UID: domain.UserID(r.LocalID), Email: r.Email}
}

// SignUp creates a new email/password account.
func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	// https://cloud.google.com/identity-platform/docs/use-rest-api#section-create-email-password
	var res accountRes
	if err := c.call(ctx, "accounts:signUp", credentialsReq{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &res); err != nil {
		return nil, err
	}

	return res.toDomain(), nil
}

// SignIn verifies an email/password pair.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	// https://cloud.google.com/identity-platform/docs/use-rest-api#section-sign-in-email-password
	var res accountRes
	if err := c.call(ctx, "accounts:signInWithPassword", credentialsReq{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &res); err != nil {
		return nil, err
	}

	return res.toDomain(), nil
}

// SendPasswordReset triggers the provider's password reset email.
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	// https://cloud.google.com/identity-platform/docs/use-rest-api#section-send-password-reset-email
	type oobReq struct {
		RequestType string `json:"requestType"`
		Email       string `json:"email"`
	}

	return c.call(ctx, "accounts:sendOobCode", oobReq{RequestType: "PASSWORD_RESET", Email: email}, nil)
}

func (c *Client) call(ctx context.Context, method string, body, out any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	endpoint := c.baseURL + "/v1/" + method + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not reach identity provider")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ParseError(resp.StatusCode, b)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// errorKinds maps provider error codes onto semantic kinds.
var errorKinds = map[string]serrors.Kind{ //nolint: gochecknoglobals
	"EMAIL_EXISTS":                serrors.ErrConflict,
	"INVALID_PASSWORD":            serrors.ErrUnauthorized,
	"EMAIL_NOT_FOUND":             serrors.ErrUnauthorized,
	"INVALID_LOGIN_CREDENTIALS":   serrors.ErrUnauthorized,
	"USER_DISABLED":               serrors.ErrUnauthorized,
	"INVALID_EMAIL":               serrors.ErrBadRequest,
	"WEAK_PASSWORD":               serrors.ErrBadRequest,
	"MISSING_PASSWORD":            serrors.ErrBadRequest,
	"MISSING_EMAIL":               serrors.ErrBadRequest,
	"TOO_MANY_ATTEMPTS_TRY_LATER": serrors.ErrRateLimited,
}

// ParseError converts an error response of the API into a semantic error. The
// provider reports failures as {"error":{"code":400,"message":"EMAIL_EXISTS"}},
// where the message may carry a " : details" suffix.
func ParseError(status int, body []byte) error {
	var res struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &res); err != nil || res.Error.Message == "" {
		return serrors.With(serrors.ErrUnavailable, "identity provider failed with status %d", status)
	}

	code, _, _ := strings.Cut(res.Error.Message, " ")
	if k, ok := errorKinds[code]; ok {
		return serrors.With(k, "%s", res.Error.Message)
	}

	return serrors.With(serrors.ErrUnavailable, "identity provider: %s", res.Error.Message)
}
