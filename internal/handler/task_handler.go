package handler

import (
	"errors"
	"net/http"

	"github.com/tasknest/tasknest/internal/auth"
	"github.com/tasknest/tasknest/internal/service"
)

// AddTask handles POST /api/v2/addTask.
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.tasks.Add(r.Context(), req.Title, req.Body, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, auth.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, addTaskResponse{
		Message: "Task created successfully",
		List:    task,
	})
}

// ListTasks handles GET /api/v2/tasks/{userId}.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, tasks, err := h.tasks.List(r.Context(), r.PathValue("userId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, auth.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, listTasksResponse{
		Message:    "Tasks retrieved successfully",
		UserID:     user.ID,
		UserEmail:  user.Email,
		TasksCount: len(tasks),
		Tasks:      tasks,
	})
}

// UpdateTask handles PUT /api/v2/updateTask/{taskId}.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.tasks.Update(r.Context(), r.PathValue("taskId"), req.Title, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, updateTaskResponse{
		Message: "Task updated successfully",
		Task:    task,
	})
}

// DeleteTask handles DELETE /api/v2/deleteTask/{taskId}.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.Delete(r.Context(), r.PathValue("taskId")); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}
