package v1handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"seoeval/internal/api/handler/v1handler"
	mockauth "seoeval/internal/auth/mock"
	mockevaluator "seoeval/internal/evaluator/mock"
	"seoeval/pkg/domain"
	"seoeval/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIssuer struct {
	token string
	exp   time.Time
}

func (f fixedIssuer) Issue(uid domain.UserID) (string, time.Time, error) {
	return f.token + ":" + string(uid), f.exp, nil
}

type apiFixture struct {
	mux       *http.ServeMux
	auth      *mockauth.MockService
	evaluator *mockevaluator.MockEvaluator
	bearer    string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	priv, pubPEM := genRSAKeys(t)

	f := &apiFixture{
		mux:       http.NewServeMux(),
		auth:      mockauth.NewMockService(ctrl),
		evaluator: mockevaluator.NewMockEvaluator(ctrl),
	}
	now := time.Now()
	f.bearer = "Bearer " + signJWTRS256(t, priv, "user-1", now, now.Add(time.Hour))

	h := v1handler.New(v1handler.Deps{
		Auth:      f.auth,
		Tokens:    fixedIssuer{token: "tkn", exp: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)},
		Evaluator: f.evaluator,
	})
	h.Register(f.mux, newSecHandlerForTest(t, pubPEM))

	return f
}

func (f *apiFixture) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authenticated {
		req.Header.Set("Authorization", f.bearer)
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	return rec
}

func TestSignUp(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.EXPECT().Register(gomock.Any(), "a@example.com", "secret1").
		Return(&domain.User{UID: "uid-1", Email: "a@example.com"}, nil)

	rec := f.do(http.MethodPost, "/v1/auth/register", `{"email":" a@example.com ","password":"secret1","extra":[1]}`, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"uid":"uid-1","email":"a@example.com"}`, rec.Body.String())
}

func TestSignUp_ProviderConflict(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.EXPECT().Register(gomock.Any(), "a@example.com", "secret1").
		Return(nil, serrors.With(serrors.ErrConflict, "email already registered"))

	rec := f.do(http.MethodPost, "/v1/auth/register", `{"email":"a@example.com","password":"secret1"}`, false)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t, `{"code":"CONFLICT","message":"email already registered"}`, rec.Body.String())
}

func TestSignUp_InvalidBodies(t *testing.T) {
	f := newAPIFixture(t)

	for _, body := range []string{
		``,
		`[]`,
		`{"email":1,"password":"x"}`,
		`{"email":"a@example.com"}`,
		`{"password":"x"}`,
		`{"email":"a@example.com","password":"x"`,
	} {
		rec := f.do(http.MethodPost, "/v1/auth/register", body, false)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`, body)
	}
}

func TestSignIn(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), "a@example.com", "secret1").
		Return(&domain.User{UID: "uid-1", Email: "a@example.com"}, nil)

	rec := f.do(http.MethodPost, "/v1/auth/login", `{"email":"a@example.com","password":"secret1"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"uid":"uid-1",
		"email":"a@example.com",
		"token":"tkn:uid-1",
		"expiresAt":"2030-01-02T03:04:05Z"
	}`, rec.Body.String())
}

func TestSignIn_WrongCredentials(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), "a@example.com", "nope").
		Return(nil, serrors.KindOnly(serrors.ErrUnauthorized))

	rec := f.do(http.MethodPost, "/v1/auth/login", `{"email":"a@example.com","password":"nope"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"unauthorized"}`, rec.Body.String())
}

func TestResetPassword(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.EXPECT().ResetPassword(gomock.Any(), "a@example.com").Return(nil)

	rec := f.do(http.MethodPost, "/v1/auth/password-reset", `{"email":"a@example.com"}`, false)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestCreateEvaluation(t *testing.T) {
	f := newAPIFixture(t)
	f.evaluator.EXPECT().Enqueue(gomock.Any(), "example.com", "2024-05-01").
		DoAndReturn(func(ctx context.Context, _, _ string) (bool, error) {
			return true, nil
		})

	rec := f.do(http.MethodPost, "/v1/evaluations", `{"domain":"https://Example.COM/path","dateOfScan":"2024-05-01"}`, true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{"domain":"example.com","dateOfScan":"2024-05-01","enqueued":true}`, rec.Body.String())
}

func TestCreateEvaluation_RequiresToken(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/v1/evaluations", `{"domain":"example.com","dateOfScan":"2024-05-01"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateEvaluation_Validation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/v1/evaluations", `{"domain":"example.com"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"dateOfScan is required"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/evaluations", `{"dateOfScan":"2024-05-01"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListIssues(t *testing.T) {
	f := newAPIFixture(t)
	meta := domain.IssueResult{Category: domain.CategoryMeta}
	meta.Add("missing_title", domain.SeverityError, "page has no title")
	f.evaluator.EXPECT().Issues(gomock.Any(), "example.com", "2024-05-01").Return([]domain.URLIssues{{
		URLID: "u1",
		Bundle: domain.IssueBundle{
			Meta:   meta,
			Body:   domain.IssueResult{Category: domain.CategoryBody},
			Social: domain.IssueResult{Category: domain.CategorySocial},
			Schema: domain.IssueResult{Category: domain.CategorySchema},
		},
	}}, nil)

	rec := f.do(http.MethodGet, "/v1/evaluations/EXAMPLE.com/2024-05-01/issues", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[{
		"urlId":"u1",
		"meta":{"category":"meta","issues":[{"code":"missing_title","severity":"error","message":"page has no title"}]},
		"body":{"category":"body","issues":[]},
		"social":{"category":"social","issues":[]},
		"schema":{"category":"schema","issues":[]}
	}]}`, rec.Body.String())
}

func TestListIssues_NotFound(t *testing.T) {
	f := newAPIFixture(t)
	f.evaluator.EXPECT().Issues(gomock.Any(), "example.com", "2024-05-01").
		Return(nil, serrors.With(serrors.ErrNotFound, "no issues stored for example.com on 2024-05-01"))

	rec := f.do(http.MethodGet, "/v1/evaluations/example.com/2024-05-01/issues", "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"no issues stored for example.com on 2024-05-01"}`, rec.Body.String())
}
