package service

import (
	"context"
	"log/slog"

	"github.com/tasknest/tasknest/internal/auth"
	"github.com/tasknest/tasknest/internal/models"
)

// AuthService handles registration and sign-in.
type AuthService struct {
	authenticator auth.Authenticator
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		logger:        logger,
	}
}

// Register creates a new user account.
// Fails with ErrMissingFields if any field is empty and auth.ErrUserExists
// if the email or username is already taken.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	s.logger.Info("Register request", "email", email, "username", username)

	if email == "" || username == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.authenticator.Register(ctx, email, username, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// SignIn verifies credentials and returns the matching user.
// Fails with auth.ErrUserNotFound for an unknown email and
// auth.ErrInvalidPassword for a bad password.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	s.logger.Info("SignIn request", "email", email)

	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("SignIn failed", "email", email, "error", err)
		return nil, err
	}

	s.logger.Info("User signed in", "user_id", user.ID, "email", user.Email)
	return user, nil
}
