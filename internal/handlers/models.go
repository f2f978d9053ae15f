package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"solace-backend/internal/middleware"
	"solace-backend/internal/models"
	"solace-backend/internal/services"
)

type modelLister interface {
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
}

type ModelsHandler struct {
	lister        modelLister
	configured    string
	exposeDetails bool
}

func NewModelsHandler(lister modelLister, configured string, exposeDetails bool) *ModelsHandler {
	return &ModelsHandler{
		lister:        lister,
		configured:    configured,
		exposeDetails: exposeDetails,
	}
}

// List returns the models available to the configured API key.
func (h *ModelsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.lister.ListModels(r.Context())
	if err != nil {
		slog.Error("Gemini list models failed",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.Any("error", err))
		handleServiceError(w, services.ClassifyUpstreamError(err), h.exposeDetails)
		return
	}

	writeJSON(w, http.StatusOK, models.ModelsResponse{
		Configured: h.configured,
		Models:     list,
	})
}
