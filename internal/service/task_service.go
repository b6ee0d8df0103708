package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest/internal/auth"
	"github.com/tasknest/tasknest/internal/models"
	"github.com/tasknest/tasknest/internal/storage"
)

// TaskService implements task create/list/update/delete on top of the store.
// Ownership is held only in Task.OwnerID; an owner's list is always derived
// by query, so creates and deletes are single-statement writes.
type TaskService struct {
	store storage.Store
}

// NewTaskService creates a new TaskService with the given storage backend.
func NewTaskService(store storage.Store) *TaskService {
	return &TaskService{store: store}
}

// Add creates a task for the user with the given email.
// Title, body and email must all be non-empty.
func (s *TaskService) Add(ctx context.Context, title, body, ownerEmail string) (*models.Task, error) {
	slog.Info("AddTask request received", "email", ownerEmail, "title", title)

	if title == "" || body == "" || ownerEmail == "" {
		return nil, ErrMissingFields
	}

	owner, err := s.store.GetUserByEmail(ctx, ownerEmail)
	if err != nil {
		slog.Error("AddTask failed", "email", ownerEmail, "error", err)
		return nil, err
	}
	if owner == nil {
		return nil, auth.ErrUserNotFound
	}

	task := &models.Task{
		Title:   title,
		Body:    body,
		OwnerID: owner.ID,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateTask(ctx, task); err != nil {
		slog.Error("AddTask failed", "owner_id", owner.ID, "error", err)
		return nil, err
	}

	slog.Info("Task created", "task_id", task.ID, "owner_id", owner.ID)
	return task, nil
}

// List returns the owner and their tasks in creation order.
func (s *TaskService) List(ctx context.Context, userID string) (*models.User, []models.Task, error) {
	slog.Info("ListTasks request received", "user_id", userID)

	id, err := parseID(userID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		slog.Error("ListTasks failed", "user_id", id, "error", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, auth.ErrUserNotFound
	}

	tasks, err := s.store.ListTasksByOwner(ctx, id)
	if err != nil {
		slog.Error("ListTasks failed", "user_id", id, "error", err)
		return nil, nil, err
	}

	slog.Info("ListTasks successful", "user_id", id, "count", len(tasks))
	return user, tasks, nil
}

// Update replaces the title and body of an existing task in place.
// Ownership is not re-validated; the owner never changes.
func (s *TaskService) Update(ctx context.Context, taskID, title, body string) (*models.Task, error) {
	slog.Info("UpdateTask request received", "task_id", taskID)

	id, err := parseID(taskID)
	if err != nil {
		return nil, err
	}

	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		slog.Error("UpdateTask failed", "task_id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Title = title
	task.Body = body
	if err := s.store.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		slog.Error("UpdateTask failed", "task_id", id, "error", err)
		return nil, err
	}

	slog.Info("Task updated", "task_id", id)
	return task, nil
}

// Delete removes a task by ID.
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	slog.Info("DeleteTask request received", "task_id", taskID)

	id, err := parseID(taskID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTaskNotFound
		}
		slog.Error("DeleteTask failed", "task_id", id, "error", err)
		return err
	}

	slog.Info("Task deleted", "task_id", id)
	return nil
}

// parseID trims and validates an identifier, returning ErrInvalidID for
// anything that is not a well-formed UUID. Malformed ids never reach the store.
func parseID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidID
	}
	return id, nil
}
