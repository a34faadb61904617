package controller_test

import (
	"net/http"
	"net/http/httptest"
	"seoeval/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux_Index(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestPprofMux_Cmdline(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof/")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/cmdline", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPprofMux_NamedProfile(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof/")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/goroutine?debug=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "goroutine")
}
