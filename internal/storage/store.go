// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/tasknest/tasknest/internal/models"
)

// ErrNotFound is returned by update/delete operations when the target
// document does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for user and task storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user.
	// The user.ID and user.CreatedAt fields are populated by the store
	// if unset.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if no user has that ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) if no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// FindUserByEmailOrUsername retrieves a user matching either the email
	// or the username. Used for the registration uniqueness pre-check.
	// Returns (nil, nil) if neither matches.
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)

	// CreateTask persists a new task.
	// The task.ID and task.CreatedAt fields are populated by the store
	// if unset.
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves a task by ID.
	// Returns (nil, nil) if no task has that ID.
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// ListTasksByOwner returns all tasks owned by the given user,
	// in creation order.
	ListTasksByOwner(ctx context.Context, ownerID string) ([]models.Task, error)

	// UpdateTask replaces the title and body of an existing task.
	// Returns ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask removes a task by ID.
	// Returns ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
