package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/go-chi/chi/v5"
)

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// createUser provisions a new employee account. Admin-issued accounts always
// get the employee role; further administrators are only ever seeded at
// bootstrap.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.CreateUser(ctx, req.Username, req.Password, models.RoleEmployee)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			utils.WriteMessage(w, msgUsernameExists, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, msgUserCreated, http.StatusCreated)
}

// resetPassword replaces the password of the user named in the URL path.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	err := h.services.AuthService.ResetPassword(ctx, username, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("username", username).Msg("user not found")
			utils.WriteMessage(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password reset")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, msgPasswordUpdated, http.StatusOK)
}
