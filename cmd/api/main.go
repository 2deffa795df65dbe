// Package main is the entry point for the My Fluxo Finance API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Felipaof/My-Fluxo-Finance/config"
	"github.com/Felipaof/My-Fluxo-Finance/internal/infra/db"
	"github.com/Felipaof/My-Fluxo-Finance/internal/infra/dependency"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/adapters"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/cache"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting My Fluxo Finance API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database_driver", cfg.Database.Driver,
	)

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	reportCache, closeCache := cache.NewReportCache(ctx, &cfg.Redis)
	defer func() {
		if err := closeCache(); err != nil {
			slog.Error("Failed to close redis client", "error", err)
		}
	}()

	injector, err := dependency.NewInjector(cfg, database.DB(), reportCache, adapters.NewSystemClock())
	if err != nil {
		return err
	}

	seeded, err := injector.SeedCategories.Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed system categories: %w", err)
	}
	slog.Info("System categories ready", "created", seeded.Created)

	go injector.LoginRateLimiter.RunCleanup(time.Minute, ctx.Done())

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
