package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WORKPLAN_EXPORT_DIR", "WORKPLAN_DB", "WORKPLAN_HISTORY", "WORKPLAN_HISTORY_LIMIT",
		"WORKPLAN_LOG_FILE", "WORKPLAN_LOG_LEVEL", "WORKPLAN_TITLE", "WORKPLAN_SUBTITLE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := LoadConfig()

	assert.Equal(t, ".", cfg.ExportDir)
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Contains(t, cfg.DBPath, "workplan.db")
	assert.Equal(t, "Plan de Optimización de Capital", cfg.Title)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKPLAN_EXPORT_DIR", "/tmp/exports")
	t.Setenv("WORKPLAN_DB", "/tmp/h.db")
	t.Setenv("WORKPLAN_HISTORY", "false")
	t.Setenv("WORKPLAN_HISTORY_LIMIT", "7")
	t.Setenv("WORKPLAN_LOG_FILE", "/tmp/workplan.log")
	t.Setenv("WORKPLAN_LOG_LEVEL", "DEBUG")
	t.Setenv("WORKPLAN_TITLE", "Plan")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
	assert.Equal(t, "/tmp/h.db", cfg.DBPath)
	assert.False(t, cfg.HistoryEnabled)
	assert.Equal(t, 7, cfg.HistoryLimit)
	assert.Equal(t, "/tmp/workplan.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Plan", cfg.Title)
}

func TestLoadConfig_IgnoresMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKPLAN_HISTORY", "maybe")
	t.Setenv("WORKPLAN_HISTORY_LIMIT", "-3")

	cfg := LoadConfig()
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, 50, cfg.HistoryLimit)
}

func TestBindFlags_OverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKPLAN_EXPORT_DIR", "/from/env")
	cfg := LoadConfig()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--export-dir", "/from/flag", "--history=false", "--history-limit", "3"}))

	assert.Equal(t, "/from/flag", cfg.ExportDir)
	assert.False(t, cfg.HistoryEnabled)
	assert.Equal(t, 3, cfg.HistoryLimit)
}

func TestBindFlags_UnsetKeepsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKPLAN_EXPORT_DIR", "/from/env")
	cfg := LoadConfig()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, "/from/env", cfg.ExportDir)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryLimit = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	assert.ErrorContains(t, cfg.Validate(), "unknown log level")

	cfg = DefaultConfig()
	cfg.DBPath = ""
	assert.Error(t, cfg.Validate())
	cfg.HistoryEnabled = false
	assert.NoError(t, cfg.Validate())
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for raw, want := range cases {
		cfg := Config{LogLevel: raw}
		got, err := cfg.SlogLevel()
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}
