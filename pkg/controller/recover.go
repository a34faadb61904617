package controller

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"seoeval/pkg/logger"

	"go.uber.org/zap"
)

// WithRecover turns a panic in next into a 500 response and an error log
// with the stack. http.ErrAbortHandler is re-panicked so net/http can abort
// the connection.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint: errorlint
				panic(rec)
			}

			logger.Error(r.Context(), "panic while serving request",
				zap.String("panic", fmt.Sprint(rec)),
				zap.ByteString("stack", debug.Stack()),
				zap.String("url", r.URL.String()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
