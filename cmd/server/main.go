package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"solace-backend/internal/config"
	"solace-backend/internal/handlers"
	"solace-backend/internal/metrics"
	"solace-backend/internal/router"
	"solace-backend/internal/services"
)

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))
	slog.Info("Environment variables loaded", slog.String("env", cfg.Env))

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTemperature)
	if err != nil {
		slog.Error("Gemini client initialization failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer geminiService.Close()
	slog.Info("Gemini client initialized", slog.String("model", geminiService.ModelName()))

	// ──── Step 3: Metrics ────
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	chatMetrics := metrics.New()
	registry.MustRegister(chatMetrics)

	// ──── Step 4: Initialize Handlers ────
	exposeDetails := !cfg.IsProduction()
	chatHandler := handlers.NewChatHandler(geminiService, chatMetrics, exposeDetails)
	healthHandler := handlers.NewHealthHandler(time.Now)
	modelsHandler := handlers.NewModelsHandler(geminiService, cfg.GeminiModel, exposeDetails)
	authHandler := handlers.NewAuthHandler()

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		chatHandler,
		healthHandler,
		modelsHandler,
		authHandler,
		metrics.Handler(registry),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown; done closes once in-flight requests have drained.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		slog.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Shutdown did not complete", slog.Any("error", err))
		}
	}()

	slog.Info("Server running", slog.Int("port", cfg.Port), slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", slog.Any("error", err))
		os.Exit(1)
	}
	<-done
	slog.Info("Server stopped")
}
