package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ledger/config"
	"ledger/internal/core"
	"ledger/internal/csvstore"
	"ledger/internal/report"
	"ledger/internal/shell"
	"ledger/internal/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// stdout belongs to the menu
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.DebugContext(ctx, "Starting application", "store", cfg.StoreDriver)

	store, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "failed to open account store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	ledger, err := core.NewLedger(ctx, store)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load accounts", "error", err)
		closeStore()
		os.Exit(1)
	}

	exporter := report.NewExporter(cfg.Export, logger)
	sh := shell.New(ledger, exporter, logger, os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() {
		done <- sh.Run(ctx)
	}()

	select {
	case err = <-done:
		if err != nil {
			logger.ErrorContext(ctx, "Shell stopped", "error", err)
		}
	case <-ctx.Done():
		// every mutation is already saved; the pending read is abandoned
		logger.DebugContext(ctx, "Interrupted")
	}

	logger.DebugContext(ctx, "Application shutdown complete")
}

func newStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (core.SnapshotStore, func(), error) {
	if cfg.StoreDriver != config.StoreDriverSQLite {
		return csvstore.NewStore(cfg.Store, logger), func() {}, nil
	}

	dbClient, err := sqlite.NewClient(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err = dbClient.Migrate(ctx); err != nil {
		dbClient.Close()
		return nil, nil, err
	}

	closer := func() {
		if err := dbClient.Close(); err != nil {
			logger.ErrorContext(ctx, "Error closing database", "error", err)
		}
	}

	return sqlite.NewAccountStore(dbClient.DB(), logger), closer, nil
}
