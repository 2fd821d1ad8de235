package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admybrand-insights/internal/adapter/bolt"
	httpadapter "admybrand-insights/internal/adapter/http"
	"admybrand-insights/internal/adapter/memory"
	"admybrand-insights/internal/adapter/postgres"
	"admybrand-insights/internal/adapter/usecase"
	"admybrand-insights/internal/config"
	"admybrand-insights/internal/config/configs"
	"admybrand-insights/internal/core/port"
	"admybrand-insights/internal/db"
	"admybrand-insights/internal/seed"
)

// main is the entry point of the dashboard backend. It loads configuration,
// initialises the structured logger, wires the configured storage driver into
// the use case and HTTP handler, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Construct the storage driver. The store is created once here and
	// injected; nothing below relies on package-level state.
	var store port.Store
	switch cfg.Store.Driver {
	case configs.DriverPostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		store = postgres.NewStore(pool)
		if cfg.Psql.RunSeed {
			if err = seed.Apply(ctx, store); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo data seeded")
			}
		}
	case configs.DriverBolt:
		bs, err := bolt.Open(cfg.Store.BoltPath)
		if err != nil {
			logger.Error("bolt store error", slog.Any("error", err))
			os.Exit(1)
		}
		defer bs.Close()
		store = bs
	default:
		store = memory.NewStore()
	}
	logger.Info("store initialised", slog.String("driver", cfg.Store.Driver))

	svc := usecase.NewDashboardUseCase(store)
	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
