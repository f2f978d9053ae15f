package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"solace-backend/internal/handlers"
	"solace-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	modelsHandler *handlers.ModelsHandler,
	authHandler *handlers.AuthHandler,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS())

	r.Get("/health", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Post("/chat", chatHandler.Chat)
	r.Get("/models", modelsHandler.List)

	// Account routes are reserved but not implemented
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)

	return r
}
