package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"scripturesketch/internal/config"
	"scripturesketch/internal/http"
	"scripturesketch/internal/migration"
	"scripturesketch/internal/service"
	"scripturesketch/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API stores verse sketches and shares one artwork across every verse linked to the same word.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Scripture Sketch API
//   description: |
//     Catalog API for word drawings attached to Bible verses.
//     Sketches are grouped by word; linked verses display the group's master artwork.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	sketchRepo := storage.NewSketchRepo(db)
	settingsRepo := storage.NewSettingsRepo(db)

	// Group legacy sketches by word before serving any grouping reads.
	// A failed run leaves the flag unset and is retried on the next start.
	ctx := context.Background()
	if cfg.SkipWordGroupMigration {
		slog.Warn("Word group migration skipped by configuration")
	} else {
		res, err := migration.NewRunner(sketchRepo, settingsRepo).RunIfNeeded(ctx)
		if err != nil {
			slog.Error("Word group migration failed", "error", err)
		} else if !res.Skipped {
			slog.Info("Word group migration finished", "groups", res.Groups, "records", res.Records)
		}
	}

	// Create services
	artworkService := service.NewArtworkService(sketchRepo)
	catalogService := service.NewCatalogService(sketchRepo)

	// Create router with dependencies
	deps := &http.Deps{
		ArtworkService: artworkService,
		CatalogService: catalogService,
		DB:             db,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
