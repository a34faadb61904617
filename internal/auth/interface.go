// Package auth exposes registration, login and password reset on top of the
// identity provider, and issues the access tokens accepted by the HTTP API.
package auth

import (
	"context"
	"seoeval/pkg/domain"
)

// Service is the authentication surface of the application. Every operation
// is delegated to the identity provider; provider failures are returned
// unchanged.
//
//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	// Register creates an account and returns the new user.
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns the user.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// ResetPassword starts the provider's password reset flow for email.
	ResetPassword(ctx context.Context, email string) error
}
