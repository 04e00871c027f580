package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
)

// markAttendance appends today's presence record for the authenticated user.
// The request carries no body: the identity comes from the verified token
// and the date from the server clock.
func (h *Handler) markAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	_, err := h.services.AttendanceService.MarkToday(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyMarked):
			log.Err(err).Int64("userID", userID).Msg("attendance already marked")
			utils.WriteMessage(w, msgAlreadyMarked, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during attendance marking")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, msgAttendanceMarked, http.StatusCreated)
}

// myAttendance returns the authenticated user's own records.
func (h *Handler) myAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	records, err := h.services.AttendanceService.ListForUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during attendance listing")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	// a user without records gets an empty array, not null
	if records == nil {
		records = []models.AttendanceRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
