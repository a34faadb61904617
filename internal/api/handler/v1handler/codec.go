package v1handler

import (
	"io"
	"net/http"
	"seoeval/pkg/domain"
	"seoeval/pkg/serrors"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// decodeBody reads a JSON object from r and hands every field to f. Unknown
// fields are skipped. Any decoding failure is a bad request.
func decodeBody(r *http.Request, f func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return serrors.With(serrors.ErrBadRequest, "request body must be a JSON object")
	}
	if err := d.Obj(f); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "decode body"), "invalid request body")
	}

	return nil
}

// decodeString decodes a string field, rejecting other JSON types.
func decodeString(d *jx.Decoder, field string) (string, error) {
	if d.Next() != jx.String {
		return "", errors.Errorf("field %q must be a string", field)
	}
	s, err := d.Str()
	if err != nil {
		return "", errors.Wrapf(err, "field %q", field)
	}

	return s, nil
}

func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(e.Bytes())))
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func encodeError(res ErrorResponse) *jx.Encoder {
	e := &jx.Encoder{}
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
	})

	return e
}

func encodeUser(e *jx.Encoder, user *domain.User) {
	e.Field("uid", func(e *jx.Encoder) { e.Str(string(user.UID)) })
	e.Field("email", func(e *jx.Encoder) { e.Str(user.Email) })
}

func encodeLogin(user *domain.User, token string, expiresAt time.Time) *jx.Encoder {
	e := &jx.Encoder{}
	e.Obj(func(e *jx.Encoder) {
		encodeUser(e, user)
		e.Field("token", func(e *jx.Encoder) { e.Str(token) })
		e.Field("expiresAt", func(e *jx.Encoder) { e.Str(expiresAt.UTC().Format(time.RFC3339)) })
	})

	return e
}

func encodeIssueResult(e *jx.Encoder, res domain.IssueResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("category", func(e *jx.Encoder) { e.Str(string(res.Category)) })
		e.Field("issues", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, issue := range res.Issues {
					e.Obj(func(e *jx.Encoder) {
						e.Field("code", func(e *jx.Encoder) { e.Str(issue.Code) })
						e.Field("severity", func(e *jx.Encoder) { e.Str(string(issue.Severity)) })
						e.Field("message", func(e *jx.Encoder) { e.Str(issue.Message) })
					})
				}
			})
		})
	})
}

func encodeIssues(items []domain.URLIssues) *jx.Encoder {
	e := &jx.Encoder{}
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, item := range items {
					e.Obj(func(e *jx.Encoder) {
						e.Field("urlId", func(e *jx.Encoder) { e.Str(item.URLID) })
						e.Field("meta", func(e *jx.Encoder) { encodeIssueResult(e, item.Bundle.Meta) })
						e.Field("body", func(e *jx.Encoder) { encodeIssueResult(e, item.Bundle.Body) })
						e.Field("social", func(e *jx.Encoder) { encodeIssueResult(e, item.Bundle.Social) })
						e.Field("schema", func(e *jx.Encoder) { encodeIssueResult(e, item.Bundle.Schema) })
					})
				}
			})
		})
	})

	return e
}
