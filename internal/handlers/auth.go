package handlers

import (
	"encoding/json"
	"net/http"

	"solace-backend/internal/models"
	"solace-backend/internal/services"
)

const msgUnexpectedError = "An unexpected error occurred. Please try again."

// AuthHandler reserves the account routes. Account management is not part of
// this service yet, so both endpoints answer 501.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, errorResp("Not implemented"))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, errorResp("Not implemented"))
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// handleServiceError writes the response for err and returns the status used.
// Raw upstream messages are only echoed when exposeDetails is set.
func handleServiceError(w http.ResponseWriter, err error, exposeDetails bool) int {
	status := http.StatusInternalServerError
	resp := errorResp(msgUnexpectedError)

	switch e := err.(type) {
	case *services.ValidationError:
		status, resp = http.StatusBadRequest, errorResp(e.Message)
	case *services.AuthError:
		status, resp = http.StatusUnauthorized, errorResp(e.Message)
	case *services.QuotaError:
		status, resp = http.StatusTooManyRequests, errorResp(e.Message)
	case *services.ModelUnavailableError:
		resp = errorResp(e.Message)
	case *services.UpstreamError:
		if exposeDetails {
			resp.Details = e.Message
		}
	}

	writeJSON(w, status, resp)
	return status
}
