package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLevel("unknown"))
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookstore.log")
	cfg := &config.Config{Log: config.LogConfig{Level: "info", Format: "json", Output: path}}

	log, cleanup, err := New(cfg)
	require.NoError(t, err)

	log.Info("database ready", "driver", "sqlite")
	log.Debug("filtered out")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"database ready"`)
	assert.Contains(t, string(data), `"driver":"sqlite"`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Output: "stderr"}}

	log, cleanup, err := New(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
}

func TestNew_BadPath(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Output: filepath.Join(t.TempDir(), "missing", "x.log")}}

	_, _, err := New(cfg)
	assert.Error(t, err)
}
