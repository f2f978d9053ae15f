package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"solace-backend/internal/metrics"
	"solace-backend/internal/middleware"
	"solace-backend/internal/models"
	"solace-backend/internal/services"
)

const maxChatBodyBytes = 1 << 20

type chatGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ChatHandler struct {
	generator     chatGenerator
	metrics       *metrics.Metrics
	exposeDetails bool
}

func NewChatHandler(generator chatGenerator, m *metrics.Metrics, exposeDetails bool) *ChatHandler {
	return &ChatHandler{
		generator:     generator,
		metrics:       m,
		exposeDetails: exposeDetails,
	}
}

// Chat validates the message, asks the model once and relays its text.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	// Bodies that are not declared as JSON are ignored, which leaves the
	// message missing.
	var req models.ChatRequest
	if isJSONRequest(r) {
		if err := decodeStrict(r.Body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
			h.count(http.StatusBadRequest)
			return
		}
	}

	message, err := services.ValidateMessage(req.Message)
	if err != nil {
		h.count(handleServiceError(w, err, h.exposeDetails))
		return
	}

	prompt := services.BuildSupportPrompt(message)

	start := time.Now()
	reply, err := h.generator.Generate(r.Context(), prompt)
	h.metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Error("Gemini API error",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.Any("error", err))
		h.count(handleServiceError(w, services.ClassifyUpstreamError(err), h.exposeDetails))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
	h.count(http.StatusOK)
}

func (h *ChatHandler) count(status int) {
	h.metrics.ChatRequests.WithLabelValues(strconv.Itoa(status)).Inc()
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeStrict decodes exactly one JSON value and rejects anything after it.
func decodeStrict(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
