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

	"golang.org/x/exp/slog"

	"secretarium/internal/app/server/api"
	"secretarium/internal/config"
	"secretarium/internal/infrastructure/kv"
	kvmemory "secretarium/internal/infrastructure/kv/memory"
	kvpostgres "secretarium/internal/infrastructure/kv/postgres"
	kvsqlite "secretarium/internal/infrastructure/kv/sqlite"
	"secretarium/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	server := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(store, cfg.Uploads.Dir, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", cfg.Server.RunAddress, "env", cfg.Env, "driver", cfg.DB.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (kv.Store, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return kvpostgres.New(ctx, cfg, log)
	case config.DriverMemory:
		return kvmemory.New(), nil
	default:
		return kvsqlite.New(cfg, log)
	}
}
