package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"seoeval/pkg/controller"
	"seoeval/pkg/logger"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := map[string]struct {
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		"forwarded for":  {headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		"real ip":        {headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		"remote addr":    {remoteAddr: "10.0.0.1:12345", want: "10.0.0.1"},
		"invalid remote": {remoteAddr: "not-an-addr", want: "not-an-addr"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

// serveLogged runs handler behind WithLogger with an observed base logger.
func serveLogged(t *testing.T, handler http.HandlerFunc, req *http.Request) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))

	rec := httptest.NewRecorder()
	controller.WithLogger(handler).ServeHTTP(rec, req)

	return rec, logs
}

func TestWithLogger_PropagatesIncomingRequestID(t *testing.T) {
	var seen string
	handler := func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"uid":"u1"}`))
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec, logs := serveLogged(t, handler, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "abc-123", fields["requestId"])
	require.EqualValues(t, http.StatusCreated, fields["status"])
	require.EqualValues(t, len(`{"uid":"u1"}`), fields["bytes"])
	require.Equal(t, "/v1/auth/register", fields["path"])
}

func TestWithLogger_GeneratesRequestID(t *testing.T) {
	for name, incoming := range map[string]string{"missing": "", "too long": strings.Repeat("x", 200)} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if incoming != "" {
				req.Header.Set(controller.RequestIDHeader, incoming)
			}
			rec, _ := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {}, req)

			got := rec.Header().Get(controller.RequestIDHeader)
			require.NotEmpty(t, got)
			require.NotEqual(t, incoming, got)
		})
	}
}

func TestWithLogger_LevelFollowsStatus(t *testing.T) {
	tests := map[int]zapcore.Level{
		http.StatusOK:                  zap.InfoLevel,
		http.StatusNotFound:            zap.WarnLevel,
		http.StatusServiceUnavailable:  zap.ErrorLevel,
		http.StatusInternalServerError: zap.ErrorLevel,
	}

	for status, want := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			_, logs := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}, req)

			require.Equal(t, 1, logs.Len())
			require.Equal(t, want, logs.All()[0].Level)
		})
	}
}

func TestRequestID_EmptyOutsideMiddleware(t *testing.T) {
	require.Empty(t, controller.RequestID(context.Background()))
}
