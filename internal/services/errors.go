package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

const (
	msgInvalidAPIKey    = "Invalid API key. Please check your GEMINI_API_KEY in .env file."
	msgQuotaExceeded    = "API quota exceeded. Please try again later."
	msgModelUnavailable = "Model not available. Visit /models to see available options."
)

// Error types

// ValidationError rejects a request before any upstream call is made.
type ValidationError struct{ Message string }

// AuthError means the upstream refused our credentials.
type AuthError struct{ Message string }

type QuotaError struct{ Message string }

// ModelUnavailableError is an operator fault: the configured model does not exist
// or is not enabled for the key.
type ModelUnavailableError struct{ Message string }

// UpstreamError carries an upstream failure that matched no other class.
// Message is the raw provider message; Status is 0 when none was surfaced.
type UpstreamError struct {
	Message string
	Status  int
}

func (e *ValidationError) Error() string       { return e.Message }
func (e *AuthError) Error() string             { return e.Message }
func (e *QuotaError) Error() string            { return e.Message }
func (e *ModelUnavailableError) Error() string { return e.Message }
func (e *UpstreamError) Error() string         { return e.Message }

// ClassifyUpstreamError maps an error returned by the Gemini client onto the
// error types above. A status code the taxonomy knows wins over the message
// text; the message is only inspected when no such status is available.
func ClassifyUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	status := upstreamStatus(err)
	switch status {
	case http.StatusUnauthorized:
		return &AuthError{Message: msgInvalidAPIKey}
	case http.StatusTooManyRequests:
		return &QuotaError{Message: msgQuotaExceeded}
	case http.StatusNotFound:
		return &ModelUnavailableError{Message: msgModelUnavailable}
	}

	msg := upstreamMessage(err)
	switch {
	case strings.Contains(msg, "API key"):
		return &AuthError{Message: msgInvalidAPIKey}
	case strings.Contains(msg, "quota"):
		return &QuotaError{Message: msgQuotaExceeded}
	}

	return &UpstreamError{Message: msg, Status: status}
}

// upstreamStatus extracts an HTTP-like status code from the error chain.
// REST failures carry a googleapi.Error; gRPC failures only a status code.
func upstreamStatus(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}

	var aerr *apierror.APIError
	if errors.As(err, &aerr) {
		if code := aerr.HTTPCode(); code > 0 {
			return code
		}
		if st := aerr.GRPCStatus(); st != nil {
			return httpStatusFromCode(st.Code())
		}
	}

	if st, ok := grpcstatus.FromError(err); ok {
		return httpStatusFromCode(st.Code())
	}
	return 0
}

func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.NotFound:
		return http.StatusNotFound
	}
	return 0
}

func upstreamMessage(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}
