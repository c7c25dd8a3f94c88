package main

import (
	"context"
	"errors"
	"jira-ticket-webhook/internal/app"
	"jira-ticket-webhook/internal/config"
	"jira-ticket-webhook/internal/middleware"
	"jira-ticket-webhook/internal/webhooks"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	bootLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(bootLogger)
	if err != nil {
		bootLogger.Error("Invalid configuration. Application cannot start.", "error", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.LogLevel)

	if cfg.SigningSecret == "" {
		logger.Warn("WEBHOOK_SIGNING_SECRET is not set, inbound signatures will not be verified")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p, err := app.NewPipeline(ctx, logger, cfg)
	if err != nil {
		logger.Error("Failed to build pipeline", "error", err)
		os.Exit(1)
	}

	webhookHandler := webhooks.NewHandler(logger, p)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Route("/webhooks", func(r chi.Router) {
		r.Use(middleware.VerifySignature(logger, cfg.SigningSecret, cfg.MaxBodyBytes))
		r.Post("/", webhookHandler.HandleWebhook)
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited gracefully")
}
