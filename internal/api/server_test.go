package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"seoeval/internal/api"
	"seoeval/internal/api/handler/v1handler"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	h, err := api.NewHandler(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
		},
		MetricsPath: "/metrics",
	})
	require.NoError(t, err)

	return h
}

func TestNewHandler_Routes(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/specs/v1.yaml", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/debug/pprof/", http.StatusOK},
		{http.MethodGet, "/v1/evaluations/example.com/2024-05-01/issues", http.StatusUnauthorized},
		{http.MethodPost, "/v1/evaluations", http.StatusUnauthorized},
		{http.MethodOptions, "/v1/evaluations", http.StatusNoContent},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)
			require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestNewHandler_ServesSpec(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))

	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "/v1/evaluations/{domain}/{dateOfScan}/issues")
}

func TestNewHandler_InvalidPublicKey(t *testing.T) {
	_, err := api.NewHandler(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "garbage"},
	})
	require.Error(t, err)
}
