package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tasknest/tasknest/internal/models"
	"github.com/tasknest/tasknest/internal/storage"
)

// CreateTask persists a new task to the database.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *models.Task) error {
	// Generate ID and timestamp if not set
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt == 0 {
		task.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (id, owner_id, title, body, created_at) VALUES (?, ?, ?, ?, ?)",
		task.ID, task.OwnerID, task.Title, task.Body, task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLiteStore) GetTask(ctx context.Context, id string) (*models.Task, error) {
	task := &models.Task{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, title, body, created_at FROM tasks WHERE id = ?",
		id,
	).Scan(&task.ID, &task.OwnerID, &task.Title, &task.Body, &task.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil // Task not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListTasksByOwner returns all tasks owned by the given user in creation order.
// rowid breaks ties between tasks created within the same second.
func (s *SQLiteStore) ListTasksByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, title, body, created_at FROM tasks WHERE owner_id = ? ORDER BY created_at, rowid",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.OwnerID, &task.Title, &task.Body, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask replaces the title and body of an existing task.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *models.Task) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, body = ? WHERE id = ?",
		task.Title, task.Body, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteTask removes a task by ID.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
