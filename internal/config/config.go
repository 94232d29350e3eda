// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ericfisherdev/fishledger/internal/domain/payload"
)

// DefaultDBPath is the ledger file the withdrawal producer writes.
const DefaultDBPath = "./fish_addon_db.db3"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string
	PayloadFormat payload.Format
	LogLevel      slog.Level
	MetricsFile   string // Empty disables the metrics textfile.
}

// Load reads configuration from environment variables and returns a validated Config.
// An empty variable is treated as unset.
// Optional variables with defaults: FISHLEDGER_DB_PATH (./fish_addon_db.db3),
// FISHLEDGER_PAYLOAD_FORMAT (raw), FISHLEDGER_LOG_LEVEL (info),
// FISHLEDGER_METRICS_FILE (unset).
func Load() (*Config, error) {
	dbPath := DefaultDBPath
	if v, ok := os.LookupEnv("FISHLEDGER_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	format := payload.FormatRaw
	if v, ok := os.LookupEnv("FISHLEDGER_PAYLOAD_FORMAT"); ok && v != "" {
		parsed, err := payload.ParseFormat(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return nil, fmt.Errorf("FISHLEDGER_PAYLOAD_FORMAT: %w", err)
		}
		format = parsed
	}

	level := slog.LevelInfo
	if v, ok := os.LookupEnv("FISHLEDGER_LOG_LEVEL"); ok && v != "" {
		parsed, err := ParseLogLevel(v)
		if err != nil {
			return nil, fmt.Errorf("FISHLEDGER_LOG_LEVEL: %w", err)
		}
		level = parsed
	}

	return &Config{
		DBPath:        dbPath,
		PayloadFormat: format,
		LogLevel:      level,
		MetricsFile:   os.Getenv("FISHLEDGER_METRICS_FILE"),
	}, nil
}

// ParseLogLevel accepts debug, info, warn or error in any case.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
