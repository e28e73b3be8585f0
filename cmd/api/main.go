// Package main is the entrypoint for the Formbox API server.
package main

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/formbox/formbox/internal/config"
	"github.com/formbox/formbox/internal/handler"
	"github.com/formbox/formbox/internal/metrics"
	"github.com/formbox/formbox/internal/middleware"
	"github.com/formbox/formbox/internal/server"
	"github.com/formbox/formbox/internal/service"
	"github.com/formbox/formbox/internal/store"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// All state lives in this store; its lifecycle is owned here.
	st := store.New()

	registry := prometheus.NewRegistry()
	recorder := metrics.NewPrometheus(registry)

	credentialSvc := service.NewCredentialService(st.Identity, recorder)
	formSvc := service.NewFormService(st.Forms, recorder)

	userHandler := handler.NewUserHandler(credentialSvc, logger)
	formHandler := handler.NewFormHandler(formSvc, logger)
	adminHandler := handler.NewAdminHandler(st, logger)
	docsHandler := handler.NewDocsHandler(logger)

	r := setupRouter(cfg, logger, credentialSvc, recorder, registry,
		userHandler, formHandler, adminHandler, docsHandler)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"debug_endpoints", cfg.DebugEndpoints,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	cfg *config.Config,
	logger *slog.Logger,
	credentialSvc *service.CredentialService,
	recorder metrics.Recorder,
	registry *prometheus.Registry,
	userHandler *handler.UserHandler,
	formHandler *handler.FormHandler,
	adminHandler *handler.AdminHandler,
	docsHandler *handler.DocsHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(chimiddleware.RequestSize(cfg.MaxRequestBodySize))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/", docsHandler.Index)
	r.Get("/healthz", handler.Healthz)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	gate := middleware.Auth(middleware.AuthConfig{
		Logger:   logger,
		Resolver: credentialSvc,
		Metrics:  recorder,
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/signup", userHandler.Signup)

		// Public form display and submission
		api.Get("/forms/{formID}", formHandler.Get)
		api.Post("/forms/{formID}/responses", formHandler.SubmitResponse)

		// Key-protected owner operations
		api.Group(func(protected chi.Router) {
			protected.Use(gate)
			protected.Post("/forms", formHandler.Create)
			protected.Get("/forms", formHandler.List)
			protected.Get("/forms/{formID}/responses", formHandler.ListResponses)
		})

		if cfg.DebugEndpoints {
			api.Get("/debug/stats", adminHandler.Stats)
			api.Post("/debug/clear", adminHandler.Clear)
		}
	})

	return r
}
