// Package service contains the business logic for authentication and task
// management, built on the storage and auth layers.
package service

import "errors"

var (
	// ErrMissingFields is returned when a required request field is empty.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidID is returned for identifiers that are not well-formed
	// UUIDs. These are rejected before any store access.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrTaskNotFound is returned when no task has the given ID.
	ErrTaskNotFound = errors.New("task not found")
)
