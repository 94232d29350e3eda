// Package cli is the terminal front end: cobra commands that open the
// withdrawal ledger and print lookups.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/fishledger/internal/config"
	"github.com/ericfisherdev/fishledger/internal/domain/payload"
)

// RootOptions holds global flags for all commands. Empty flag values fall
// back to the environment configuration.
type RootOptions struct {
	DBPath        string
	PayloadFormat string
	LogLevel      string
	MetricsFile   string
	NoColor       bool

	cfg *config.Config
}

// NewRootCommand creates the root command for the fishledger CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fishledger",
		Short: "Inspect recorded fish withdrawals",
		Long: `Look up withdrawal records in the local ledger file by the unix timestamp
they were received at, and print the decoded per-species quantities.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to the ledger file (default $FISHLEDGER_DB_PATH or "+config.DefaultDBPath+")")
	cmd.PersistentFlags().StringVar(&opts.PayloadFormat, "payload-format", "", "payload layout: raw or bincode (default $FISHLEDGER_PAYLOAD_FORMAT or raw)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error (default $FISHLEDGER_LOG_LEVEL or info)")
	cmd.PersistentFlags().StringVar(&opts.MetricsFile, "metrics-file", "", "write lookup counters to this Prometheus textfile on exit")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewSpeciesCommand(opts))

	return cmd
}

// resolve loads the environment configuration, applies flag overrides and
// installs the default logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return exitWith(ExitCommandError, "load config", err)
	}

	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if o.PayloadFormat != "" {
		format, err := payload.ParseFormat(o.PayloadFormat)
		if err != nil {
			return exitWith(ExitCommandError, "--payload-format", err)
		}
		cfg.PayloadFormat = format
	}
	if o.LogLevel != "" {
		level, err := config.ParseLogLevel(o.LogLevel)
		if err != nil {
			return exitWith(ExitCommandError, "--log-level", err)
		}
		cfg.LogLevel = level
	}
	if o.MetricsFile != "" {
		cfg.MetricsFile = o.MetricsFile
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))

	slog.Debug("config loaded",
		"db_path", cfg.DBPath,
		"payload_format", cfg.PayloadFormat,
		"metrics_file", cfg.MetricsFile,
	)
	o.cfg = cfg
	return nil
}

// withLedger opens the ledger for the duration of fn.
func (o *RootOptions) withLedger(cmd *cobra.Command, fn func(l *ledger) error) (err error) {
	l, err := openLedger(cmd.Context(), o.cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := l.Close(); closeErr != nil {
			slog.Error("error closing ledger", "error", closeErr)
			if err == nil {
				err = exitWith(ExitCommandError, "close ledger", closeErr)
			}
		}
	}()
	return fn(l)
}

func (o *RootOptions) printer(cmd *cobra.Command) *Printer {
	return NewPrinter(cmd.OutOrStdout(), o.NoColor)
}

func errLookup(receivedAt uint64, err error) error {
	return exitWith(ExitLookupFailed, fmt.Sprintf("lookup %d", receivedAt), err)
}
