package http

import (
	"net/http"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
)

// dashboard returns the full per-employee attendance aggregation.
// The roster is not paginated; admins receive every employee per call.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rows, err := h.services.ReportService.BuildDashboard(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during dashboard aggregation")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	if rows == nil {
		rows = []models.DashboardRow{}
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}
