package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clipforge/clipforge/internal/api"
	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/db"
	"github.com/clipforge/clipforge/internal/editor"
	"github.com/clipforge/clipforge/internal/export"
	"github.com/clipforge/clipforge/internal/history"
	"github.com/clipforge/clipforge/internal/logging"
	"github.com/clipforge/clipforge/internal/metrics"
	"github.com/clipforge/clipforge/internal/session"
	"github.com/clipforge/clipforge/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fatal error: %v", err)
	}
}

func run() error {
	startTime := time.Now()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir(), 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel())
	logger.Info("starting clipforge agent",
		"version", config.Version, "commit", config.GitCommit, "built", config.BuildTime, "data_dir", cfg.DataDir())

	database, err := db.New(cfg.DBPath(), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv := storage.NewSQLiteKV(database.Conn())
	historyStore := history.NewStore(ctx, kv, cfg.HistoryKey(), logger)
	sessionStore := session.NewStore(logger)
	synth := export.NewPlaceholderSynthesizer(logger)

	met := metrics.New()

	coordinator := editor.New(sessionStore, historyStore, synth, nil, logger)
	if repaired := coordinator.ReconcileHistory(ctx); repaired > 0 {
		met.AddRepairs(repaired)
	}

	apiServer := api.NewServer(api.ServerConfig{
		Port:         cfg.Port(),
		SessionStore: sessionStore,
		HistoryStore: historyStore,
		Coordinator:  coordinator,
		Metrics:      met,
		Logger:       logger,
		StartTime:    startTime,
	})

	go func() {
		if err := apiServer.Start(); err != nil {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	logger.Info("agent ready", "addr", apiServer.Addr(), "history_artifacts", len(historyStore.List(ctx)))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig)

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown HTTP server", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
