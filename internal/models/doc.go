// Package models defines the core domain models for Tasknest.
//
// Two models cover the whole system:
//   - User: a registered account identified by email and username
//   - Task: a title/body note owned by exactly one user
//
// # Design Principles
//
// 1. **Avoid circular references**: tasks point at their owner by ID string;
// users hold no task list. An owner's tasks are always derived by querying on
// Task.OwnerID, so there is no reference array to keep in sync.
//
// 2. **Serialization-safe by construction**: the password hash is excluded
// from JSON at the model level, so no handler can leak it by accident.
package models
