package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"solace-backend/internal/models"
)

// ─── Health ───

func TestHealth(t *testing.T) {
	fixed := time.Date(2025, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("CET", 3600))
	h := NewHealthHandler(func() time.Time { return fixed })

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","timestamp":"2025-03-04T04:06:07.890Z"}`, rr.Body.String())
}

func TestHealth_TimestampParses(t *testing.T) {
	h := NewHealthHandler(nil)

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	resp := parseBody[models.HealthResponse](t, rr)
	assert.Equal(t, "ok", resp.Status)
	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

// ─── Auth stubs ───

func TestAuthStubs(t *testing.T) {
	h := NewAuthHandler()

	for name, fn := range map[string]http.HandlerFunc{"signup": h.Signup, "login": h.Login} {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			fn(rr, httptest.NewRequest(http.MethodPost, "/"+name, nil))

			require.Equal(t, http.StatusNotImplemented, rr.Code)
			assert.JSONEq(t, `{"error":"Not implemented"}`, rr.Body.String())
		})
	}
}

// ─── Models ───

type stubModelLister struct {
	list []models.ModelInfo
	err  error
}

func (s *stubModelLister) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	return s.list, s.err
}

func TestModels_List(t *testing.T) {
	lister := &stubModelLister{list: []models.ModelInfo{
		{Name: "models/gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash", SupportedGenerationMethods: []string{"generateContent"}},
	}}
	h := NewModelsHandler(lister, "gemini-2.5-flash", false)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/models", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	resp := parseBody[models.ModelsResponse](t, rr)
	assert.Equal(t, "gemini-2.5-flash", resp.Configured)
	require.Len(t, resp.Models, 1)
	assert.Equal(t, "models/gemini-2.5-flash", resp.Models[0].Name)
}

func TestModels_ListErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad key", &googleapi.Error{Code: http.StatusUnauthorized}, http.StatusUnauthorized},
		{"quota", &googleapi.Error{Code: http.StatusTooManyRequests}, http.StatusTooManyRequests},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewModelsHandler(&stubModelLister{err: tc.err}, "gemini-2.5-flash", false)

			rr := httptest.NewRecorder()
			h.List(rr, httptest.NewRequest(http.MethodGet, "/models", nil))

			require.Equal(t, tc.status, rr.Code)
			resp := parseBody[map[string]any](t, rr)
			assert.NotEmpty(t, resp["error"])
			assert.NotContains(t, resp, "details")
		})
	}
}

// ─── Error mapping ───

func TestHandleServiceError_UnknownType(t *testing.T) {
	rr := httptest.NewRecorder()
	status := handleServiceError(rr, errors.New("surprise"), true)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"An unexpected error occurred. Please try again."}`, rr.Body.String())
}
