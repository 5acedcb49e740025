package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/taskwell/taskboard-api/internal/api"
	apimiddleware "github.com/taskwell/taskboard-api/internal/api/middleware"
	"github.com/taskwell/taskboard-api/internal/config"
	"github.com/taskwell/taskboard-api/internal/platform/postgres"
	"github.com/taskwell/taskboard-api/internal/service"
	"github.com/taskwell/taskboard-api/internal/service/auth"
)

// application holds the wired dependencies of the running server.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	db             *sql.DB
	authHandler    *api.AuthHandler
	taskHandler    *api.TaskHandler
	authMiddleware *apimiddleware.AuthMiddleware
}

// newApplication connects to the database, applies migrations, and wires all
// services and handlers together.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	warnOnDefaultSecrets(cfg, logger)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}
	logger.Info("database ready")

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	credentials, err := auth.NewCredentialVerifier(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential verifier: %w", err)
	}

	taskStore := postgres.NewPostgresTaskStore(db)
	taskService := service.NewTaskService(taskStore)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		authHandler:    api.NewAuthHandler(credentials, jwtService),
		taskHandler:    api.NewTaskHandler(taskService),
		authMiddleware: apimiddleware.NewAuthMiddleware(jwtService),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}

// warnOnDefaultSecrets logs loudly when development defaults are still in
// use. The default JWT secret and admin credentials must never reach a
// production deployment.
func warnOnDefaultSecrets(cfg *config.Config, logger *slog.Logger) {
	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("using default JWT secret; set TASKBOARD_AUTH_JWT_SECRET before deploying")
	}
	if cfg.Auth.AdminUsername == config.DefaultAdminUsername &&
		cfg.Auth.AdminPassword == config.DefaultAdminPassword {
		logger.Warn("using default admin credentials; override them before deploying")
	}
}
