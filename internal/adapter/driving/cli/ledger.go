package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ericfisherdev/fishledger/internal/adapter/driven/metrics"
	sqliteadapter "github.com/ericfisherdev/fishledger/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/fishledger/internal/application"
	"github.com/ericfisherdev/fishledger/internal/config"
	"github.com/ericfisherdev/fishledger/internal/domain/payload"
	"github.com/ericfisherdev/fishledger/internal/domain/port/driven"
)

// ledger bundles the opened store and the services built on it.
type ledger struct {
	db          *sqliteadapter.DB
	service     *application.LookupService
	metrics     *metrics.LookupMetrics
	metricsFile string
}

// openLedger opens the database, ensures the schema and wires the lookup
// service. Any failure here is fatal: no query can run without a store.
func openLedger(ctx context.Context, cfg *config.Config) (*ledger, error) {
	codec, err := payload.ForFormat(cfg.PayloadFormat)
	if err != nil {
		return nil, exitWith(ExitCommandError, "select payload codec", err)
	}

	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, exitWith(ExitCommandError, "open ledger", err)
	}
	slog.Info("database opened", "path", cfg.DBPath)

	repo := sqliteadapter.NewWithdrawalRepo(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
		return nil, exitWith(ExitCommandError, "prepare ledger", err)
	}
	slog.Info("schema ready")

	l := &ledger{db: db, metricsFile: cfg.MetricsFile}
	var recorder driven.LookupRecorder
	if cfg.MetricsFile != "" {
		l.metrics = metrics.NewLookupMetrics()
		recorder = l.metrics
	}
	l.service = application.NewLookupService(repo, codec, recorder)

	slog.Debug("lookup service ready", "payload_format", codec.Format())
	return l, nil
}

// Close flushes metrics, if enabled, and closes the database.
func (l *ledger) Close() error {
	var errs []error
	if l.metrics != nil {
		if err := l.metrics.WriteTextfile(l.metricsFile); err != nil {
			errs = append(errs, err)
		} else {
			slog.Info("metrics written", "path", l.metricsFile)
		}
	}
	if err := l.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
