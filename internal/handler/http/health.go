package http

import (
	"net/http"

	"github.com/MKhiriev/nurse-notes/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
