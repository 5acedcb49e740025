// Package main implements the entry point for the taskboard API server:
// a small task-tracking service with bearer-token authentication,
// paginated listing, and partial task updates.
package main

import (
	"context"
	"log"

	"github.com/taskwell/taskboard-api/internal/config"
	"github.com/taskwell/taskboard-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg.Server)
	logg.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, logg)
	if err != nil {
		logg.Error("failed to initialize application", "error", err)
		log.Fatalf("failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
