package v1handler

import (
	"context"
	"fmt"
	"net/http"
	"seoeval/internal/config"
	"seoeval/pkg/domain"
	"seoeval/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang-jwt/jwt/v5/request"
)

type ctxKey string

// UserIDKey is the context key under which the authenticated domain.UserID
// is stored.
const UserIDKey ctxKey = "userID"

// SecHandlerOptions configures bearer token validation.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler validates RS256 access tokens. The token subject is the user id.
type SecHandler struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		keyFn: func(*jwt.Token) (any, error) { return pub, nil },
	}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the user id.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, s.keyFn); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(claims.Subject)), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" token
// with 401.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	h := New(Deps{})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated user id, or an empty id.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	uid, _ := ctx.Value(UserIDKey).(domain.UserID)

	return uid
}
