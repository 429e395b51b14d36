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

	"github.com/josh-kwaku/transfer-ledger/internal/app"
	"github.com/josh-kwaku/transfer-ledger/internal/config"
	"github.com/josh-kwaku/transfer-ledger/internal/handler"
	"github.com/josh-kwaku/transfer-ledger/internal/logging"
	"github.com/josh-kwaku/transfer-ledger/internal/router"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("ledger api exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Init("ledger-api", cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, time.Now)
	if err != nil {
		return fmt.Errorf("open %s ledger: %w", cfg.LedgerBackend, err)
	}
	defer a.Close()

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: router.New(router.Handlers{
			Transfers: handler.NewTransferHandler(a.Transfers),
			Deposits:  handler.NewDepositHandler(a.Deposits),
			Balances:  handler.NewBalanceHandler(a.Balances),
			Health:    handler.NewHealthHandler(a.Ledger, cfg.LedgerBackend),
		}, logger),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", srv.Addr, "backend", cfg.LedgerBackend)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
