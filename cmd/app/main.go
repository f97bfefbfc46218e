package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/musiclog/musiclog/internal/bootstrap"
	"github.com/musiclog/musiclog/internal/config"
	"github.com/musiclog/musiclog/internal/database"
	"github.com/musiclog/musiclog/internal/ingest"
	"github.com/musiclog/musiclog/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logging (stdout + rotating session files)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	// Connect to the database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	repos := bootstrap.InitializeRepositories(dbPool)

	// Statistics pipeline (bus -> observer -> aggregates)
	bus, statsService, err := bootstrap.InitializeStatisticsPipeline(repos)
	if err != nil {
		slog.Error("Failed to initialize statistics pipeline", "error", err)
		os.Exit(1)
	}

	// Ingestion service publishes accepted events onto the bus
	ingestService := ingest.NewService(repos.Event, bus)

	// HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, ingestService, statsService, repos.Event)

	// Run until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
