// Package identity defines the abstraction over the third-party identity
// service that owns user accounts. The application never stores passwords; it
// delegates registration, sign in and password resets to a Provider.
package identity

import (
	"context"
	"seoeval/pkg/domain"
)

// Provider is the abstraction for identity services. Implementations map
// their own failure codes onto serrors kinds.
//
//go:generate mockgen -package mockidentity -source=interface.go -destination=mock/mockidentity.go *
type Provider interface {
	// SignUp creates an account for email and returns the new user.
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	// SignIn verifies the credentials and returns the matching user.
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
	// SendPasswordReset asks the provider to email a password reset link.
	SendPasswordReset(ctx context.Context, email string) error
}
