package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-transactions/internal/config"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf)

	l.Info().Str("run_id", "run_1").Msg("run started")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "run_1", entry["run_id"])
	assert.Equal(t, "run started", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_WritesToFileAndTruncates(t *testing.T) {
	previous := log.Logger
	defer func() { log.Logger = previous }()

	path := filepath.Join(t.TempDir(), "transactions_logs.log")
	require.NoError(t, os.WriteFile(path, []byte("old content\n"), 0644))

	l, closer, err := New(config.LogConfig{File: path, Level: "info"})
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Msg("visible")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old content")
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestNew_InvalidLevelFallsBackToDebug(t *testing.T) {
	previous := log.Logger
	defer func() { log.Logger = previous }()

	l, closer, err := New(config.LogConfig{Level: "loud"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

func TestNew_UnwritableFile(t *testing.T) {
	_, _, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
