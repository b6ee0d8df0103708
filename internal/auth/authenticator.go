package auth

import (
	"context"

	"github.com/tasknest/tasknest/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// passkeys, OAuth, etc.) without changing the service layer code.
type Authenticator interface {
	// Register creates a new user account with the given email, username
	// and credential. Returns the created user or an error if a user with
	// the same email or username already exists.
	Register(ctx context.Context, email, username, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if
	// successful. Returns ErrUserNotFound for an unknown email and
	// ErrInvalidPassword for a hash mismatch.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)
}
