package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/dashboard/internal/config"
	"github.com/JonMunkholm/dashboard/internal/core"
	_ "github.com/JonMunkholm/dashboard/internal/core/views" // Register all views
	"github.com/JonMunkholm/dashboard/internal/logging"
	"github.com/JonMunkholm/dashboard/internal/web"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"store", cfg.Store.Kind,
		"page_size", cfg.View.PageSize,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	overrides, err := config.LoadViewOverrides(cfg.View.File)
	if err != nil {
		slog.Error("failed to load view overrides", "file", cfg.View.File, "error", err)
		os.Exit(1)
	}
	if err := core.ApplyViewConfig(cfg.View.PageSize, overrides); err != nil {
		slog.Error("failed to apply view overrides", "error", err)
		os.Exit(1)
	}
	slog.Info("views registered", "count", len(core.All()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := core.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	service, err := core.NewService(store)
	if err != nil {
		slog.Error("failed to create service", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(service, cfg)

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(server.Start)

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		slog.Error("server stopped", "error", err)
		closeStore()
		os.Exit(1)
	}
	slog.Info("server stopped")
}
