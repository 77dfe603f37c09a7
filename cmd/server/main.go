// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

// Package main is the entry point for the MHTCET preference engine server.
//
// The server loads the MHTCET cutoff table from CSV and answers preference
// queries: given a candidate's merit rank, quota, category, seat type and
// CAP round, it returns an ordered college preference list with a
// probability tier for every candidate seat.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: settings from config file and environment (Koanf v2)
//  2. Logging: structured zerolog output (json or console)
//  3. Dataset store: cutoff CSV loaded into an immutable in-memory snapshot
//  4. Preference engine: eligibility filter, probability scorer and ranker
//  5. HTTP server: REST API plus Prometheus /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config file (config.yaml),
// built-in defaults. CONFIG_PATH overrides the config file location.
//
// Common settings:
//   - DATASET_PATH: cutoff CSV file (default: data/cutoffs.csv)
//   - HTTP_HOST / HTTP_PORT: listen address (default: 0.0.0.0:8080)
//   - LOG_LEVEL / LOG_FORMAT: logging controls
//   - DATASET_RELOAD_ENABLED=true to allow POST /api/v1/dataset/reload
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits up to 10s for in-flight requests.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JARAWA/MHTCET/internal/api"
	"github.com/JARAWA/MHTCET/internal/config"
	"github.com/JARAWA/MHTCET/internal/dataset"
	"github.com/JARAWA/MHTCET/internal/engine"
	"github.com/JARAWA/MHTCET/internal/logging"
	"github.com/JARAWA/MHTCET/internal/metrics"
)

// version is set via -ldflags "-X main.version=..." at build time.
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting MHTCET preference engine")

	metrics.SetAppInfo(version)

	store := dataset.NewStore(cfg.Dataset.Path, cfg.Dataset.Year)
	if snap, err := store.Reload(); err != nil {
		// Serve anyway: catalog and health stay up, preference queries
		// return 503 until a reload succeeds.
		logging.Warn().Err(err).Str("path", cfg.Dataset.Path).
			Msg("Initial dataset load failed, serving without data")
		metrics.RecordDatasetLoad(0, 0, err)
	} else {
		metrics.RecordDatasetLoad(snap.Stats.Records, snap.Stats.SkippedRows, nil)
	}

	eng := engine.New(cfg.Engine, cfg.Catalog, store, logging.Logger())
	handler := api.NewHandler(cfg, store, eng, version)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(cfg, handler),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}
