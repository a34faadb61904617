// Package serrors implements semantic error kinds. A Kind classifies an error
// (not found, bad request, ...) independently of its cause: storage, the
// evaluator and the identity client attach kinds, and the HTTP layer and the
// worker decide on status codes and retries from the kind alone.
package serrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a sentinel error naming a category of failure. Kinds are created
// with NewKind and compared with errors.Is.
type Kind interface {
	error
	kindName() string
}

type kind string

func (k kind) Error() string    { return string(k) }
func (k kind) kindName() string { return string(k) }

// NewKind returns the kind called name. Kinds with the same name are equal.
func NewKind(name string) Kind { return kind(name) }

// Kinds shared by every package of the module.
var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden means the caller is authenticated but not allowed.
	ErrForbidden  = NewKind("FORBIDDEN")
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict means the entity already exists, e.g. a registered email.
	ErrConflict    = NewKind("CONFLICT")
	ErrInternal    = NewKind("INTERNAL")
	ErrTimeout     = NewKind("TIMEOUT")
	ErrUnavailable = NewKind("UNAVAILABLE")
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error attaches a kind and a message to an optional cause.
//
// errors.Is matches both the kind and anything in the cause chain; errors.As
// into a Kind yields the kind of the outermost Error. The text is
// "<msg>: <cause>", leaving out whichever part is empty, and falls back to
// the kind name.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an error of kind k without a cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k caused by err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, cause: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns an error of kind k with neither message nor cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	parts := make([]string, 0, 2)
	if e.msg != "" {
		parts = append(parts, e.msg)
	}
	if e.cause != nil {
		parts = append(parts, e.cause.Error())
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	if e.kind != nil {
		return e.kind.Error()
	}

	return "unknown error"
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the kind of e. The cause chain is walked by
// errors.Is through Unwrap.
func (e *Error) Is(target error) bool {
	return e != nil && e.kind != nil && target == e.kind
}

// As fills a *Kind target with the kind of e.
func (e *Error) As(target any) bool {
	if e == nil || e.kind == nil {
		return false
	}
	kp, ok := target.(*Kind)
	if !ok {
		return false
	}
	*kp = e.kind

	return true
}

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, which may be nil.
func (e *Error) Cause() error { return e.cause }

// KindOf returns the outermost kind of err's chain, or nil.
func KindOf(err error) Kind {
	var k Kind
	if err != nil && errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf returns the message of the outermost *Error of err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}

	return ""
}
