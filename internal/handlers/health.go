package handlers

import (
	"net/http"
	"time"

	"solace-backend/internal/models"
)

// ISO 8601 in UTC with millisecond precision, e.g. 2025-01-02T03:04:05.678Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler(now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{now: now}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}
