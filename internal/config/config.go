package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Config holds the runtime settings of the dashboard.
type Config struct {
	ExportDir string

	DBPath         string
	HistoryEnabled bool
	HistoryLimit   int

	LogFile  string
	LogLevel string

	Title    string
	Subtitle string
}

// DefaultConfig returns the settings used when nothing is configured.
// History lives under ~/.workplan; logging is off.
func DefaultConfig() Config {
	dbPath := filepath.Join(".workplan", "workplan.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".workplan", "workplan.db")
	}
	return Config{
		ExportDir:      ".",
		DBPath:         dbPath,
		HistoryEnabled: true,
		HistoryLimit:   50,
		LogLevel:       "info",
		Title:          "Plan de Optimización de Capital",
		Subtitle:       "Banco Internacional | Dashboard Ejecutivo",
	}
}

// LoadConfig reads WORKPLAN_* environment variables over the defaults.
// Malformed numbers and booleans are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WORKPLAN_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("WORKPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("WORKPLAN_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HistoryEnabled = b
		}
	}
	if v := os.Getenv("WORKPLAN_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("WORKPLAN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("WORKPLAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("WORKPLAN_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("WORKPLAN_SUBTITLE"); v != "" {
		cfg.Subtitle = v
	}

	return cfg
}

// BindFlags registers command-line overrides for cfg on fs. Flags left unset
// keep the environment or default value already in cfg.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ExportDir, "export-dir", c.ExportDir, "Directory export files are written to")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "Path of the export history database")
	fs.IntVar(&c.HistoryLimit, "history-limit", c.HistoryLimit, "Number of export records to keep (0 keeps none)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Append structured logs to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug|info|warn|error)")
	fs.BoolVar(&c.HistoryEnabled, "history", c.HistoryEnabled, "Record exports in the history database")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit must be >= 0, got %d", c.HistoryLimit)
	}
	if c.HistoryEnabled && c.DBPath == "" {
		return fmt.Errorf("history database path must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", c.LogLevel)
}
