package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the user's email address (unique).
	// Used for login and to resolve task ownership.
	Email string `json:"email"`

	// Username is the display name chosen at registration (unique).
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewUser creates a User with a generated ID and creation timestamp.
func NewUser(email, username, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
