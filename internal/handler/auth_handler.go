package handler

import (
	"errors"
	"net/http"

	"github.com/tasknest/tasknest/internal/auth"
	"github.com/tasknest/tasknest/internal/service"
)

// Register handles POST /api/v1/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		// The auth group reports conflicts and missing fields as 400.
		if errors.Is(err, service.ErrMissingFields) || errors.Is(err, auth.ErrUserExists) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{User: user})
}

// SignIn handles POST /api/v1/signin.
// The response carries the user fields at the top level; the password hash is
// never serialized.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and bad password are both 400 on this endpoint.
		if errors.Is(err, service.ErrMissingFields) ||
			errors.Is(err, auth.ErrUserNotFound) ||
			errors.Is(err, auth.ErrInvalidPassword) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
