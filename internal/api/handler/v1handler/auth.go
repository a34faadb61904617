package v1handler

import (
	"net/http"
	"seoeval/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
)

type credentials struct {
	Email    string
	Password string
}

func decodeCredentials(r *http.Request, needPassword bool) (credentials, error) {
	var c credentials
	err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "email":
			c.Email, err = decodeString(d, key)
		case "password":
			c.Password, err = decodeString(d, key)
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		return c, err
	}

	c.Email = strings.TrimSpace(c.Email)
	if c.Email == "" {
		return c, serrors.With(serrors.ErrBadRequest, "email is required")
	}
	if needPassword && c.Password == "" {
		return c, serrors.With(serrors.ErrBadRequest, "password is required")
	}

	return c, nil
}

// SignUp registers an account and answers 201 with the new user.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r, true)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Auth.Register(r.Context(), c.Email, c.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	e := &jx.Encoder{}
	e.Obj(func(e *jx.Encoder) { encodeUser(e, user) })
	writeJSON(w, http.StatusCreated, e)
}

// SignIn verifies the credentials and answers with an access token.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r, true)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Auth.Login(r.Context(), c.Email, c.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	token, expiresAt, err := h.deps.Tokens.Issue(user.UID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeLogin(user, token, expiresAt))
}

// ResetPassword starts the password reset flow and answers 204.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCredentials(r, false)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Auth.ResetPassword(r.Context(), c.Email); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
