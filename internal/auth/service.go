package auth

import (
	"context"
	"seoeval/pkg/domain"
	"seoeval/pkg/identity"
	"seoeval/pkg/logger"

	"go.uber.org/zap"
)

type service struct {
	provider identity.Provider
}

// Ensure service implements Service.
var _ Service = (*service)(nil)

// New creates a Service delegating to provider.
func New(provider identity.Provider) Service {
	return &service{provider: provider}
}

func (s *service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		logger.Get(ctx).Warn("could not register user", zap.String("email", email), zap.Error(err))

		return nil, err //nolint: wrapcheck
	}

	logger.Get(ctx).Info("user registered", zap.String("uid", string(user.UID)))

	return user, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		logger.Get(ctx).Warn("could not log in user", zap.String("email", email), zap.Error(err))

		return nil, err //nolint: wrapcheck
	}

	return user, nil
}

func (s *service) ResetPassword(ctx context.Context, email string) error {
	if err := s.provider.SendPasswordReset(ctx, email); err != nil {
		logger.Get(ctx).Warn("could not send password reset", zap.String("email", email), zap.Error(err))

		return err //nolint: wrapcheck
	}

	return nil
}
