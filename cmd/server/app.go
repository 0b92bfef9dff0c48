package main

import (
	"fmt"
	"log/slog"

	"github.com/mfarrell/taskapi/internal/config"
	"github.com/mfarrell/taskapi/internal/platform/memory"
	"github.com/mfarrell/taskapi/internal/service/auth"
	"github.com/mfarrell/taskapi/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore

	// Service interfaces
	jwtService auth.JWTService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration and logger
// that must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize the in-memory task store. State lives only for the
	// process lifetime; there is nothing to persist or restore.
	app.taskStore = memory.NewTaskStore()
	logger.Info("in-memory task store initialized")

	return app, nil
}

// cleanup handles graceful shutdown of application resources.
// The in-memory store needs no teardown; its contents are discarded
// with the process.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
