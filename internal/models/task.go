package models

// Task represents a single title/body task owned by one user.
type Task struct {
	// ID is the unique identifier for the task (UUID format).
	ID string `json:"id"`

	// Title is the short human-readable name of the task.
	Title string `json:"title"`

	// Body is the free-form description of the task.
	Body string `json:"body"`

	// OwnerID references the User that owns this task.
	// Set at creation, never reassigned.
	OwnerID string `json:"ownerId"`

	// CreatedAt is the Unix timestamp when the task was created.
	// Task lists are returned in creation order.
	CreatedAt int64 `json:"createdAt"`
}
