// Package handler translates HTTP/JSON requests into service calls and maps
// service errors to status codes.
package handler

import (
	"net/http"

	"github.com/tasknest/tasknest/internal/service"
)

// Handler holds the services behind the HTTP API.
type Handler struct {
	auth  *service.AuthService
	tasks *service.TaskService
}

// New creates a Handler over the given services.
func New(auth *service.AuthService, tasks *service.TaskService) *Handler {
	return &Handler{auth: auth, tasks: tasks}
}

// Routes registers all API routes on the mux.
// The auth and task route groups mirror the public API contract.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/register", h.Register)
	mux.HandleFunc("POST /api/v1/signin", h.SignIn)

	mux.HandleFunc("POST /api/v2/addTask", h.AddTask)
	mux.HandleFunc("GET /api/v2/tasks/{userId}", h.ListTasks)
	mux.HandleFunc("PUT /api/v2/updateTask/{taskId}", h.UpdateTask)
	mux.HandleFunc("DELETE /api/v2/deleteTask/{taskId}", h.DeleteTask)
}
