package handler

import "github.com/tasknest/tasknest/internal/models"

// Request bodies.

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addTaskRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Email string `json:"email"`
}

type updateTaskRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Response envelopes. Shapes match the public API contract, including the
// historical "list" key on task creation.

type messageResponse struct {
	Message string `json:"message"`
}

type registerResponse struct {
	User *models.User `json:"user"`
}

type addTaskResponse struct {
	Message string       `json:"message"`
	List    *models.Task `json:"list"`
}

type listTasksResponse struct {
	Message    string        `json:"message"`
	UserID     string        `json:"userId"`
	UserEmail  string        `json:"userEmail"`
	TasksCount int           `json:"tasksCount"`
	Tasks      []models.Task `json:"tasks"`
}

type updateTaskResponse struct {
	Message string       `json:"message"`
	Task    *models.Task `json:"task"`
}
