// Package v1handler implements version 1 of the HTTP API: account
// registration and login on top of the identity provider, and the
// evaluation endpoints.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"seoeval/internal/auth"
	"seoeval/internal/evaluator"
	"seoeval/pkg/domain"
	"seoeval/pkg/logger"
	"seoeval/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// TokenIssuer signs access tokens for logged in users.
type TokenIssuer interface {
	Issue(uid domain.UserID) (string, time.Time, error)
}

// Deps are the services the handler delegates to.
type Deps struct {
	Auth      auth.Service
	Tokens    TokenIssuer
	Evaluator evaluator.Evaluator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux. Evaluation routes require a bearer
// token checked by sec.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("POST /v1/auth/register", h.SignUp)
	mux.HandleFunc("POST /v1/auth/login", h.SignIn)
	mux.HandleFunc("POST /v1/auth/password-reset", h.ResetPassword)

	mux.Handle("POST /v1/evaluations", sec.Middleware(http.HandlerFunc(h.CreateEvaluation)))
	mux.Handle("GET /v1/evaluations/{domain}/{dateOfScan}/issues", sec.Middleware(http.HandlerFunc(h.ListIssues)))
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type kindStatus struct {
	status  int
	message string
}

var kindStatuses = map[serrors.Kind]kindStatus{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "timeout"},
}

// NewError maps err to a response. Errors without a known kind are reported
// as internal errors and their details are only logged.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	ks, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	logger.Info(ctx, "request rejected", zap.Error(err))
	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = ks.message
	}

	return &ErrorStatusCode{
		StatusCode: ks.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.DeadlineExceeded) && serrors.KindOf(err) == nil {
		err = serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	}
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, encodeError(res.Response))
}
