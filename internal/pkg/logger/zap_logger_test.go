package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/piresc/taxe/internal/pkg/models"
)

func TestNewZapLogger(t *testing.T) {
	tests := []struct {
		name   string
		config ZapConfig
	}{
		{name: "stderr only", config: ZapConfig{Level: "debug"}},
		{name: "unknown level falls back to info", config: ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewZapLogger(tt.config)
			require.NoError(t, err)
			assert.NotNil(t, l.Logger)
			assert.NoError(t, l.Close())
		})
	}
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "taxe.log")

	l, err := InitZapLoggerFromConfig(&models.Config{Logger: models.LoggerConfig{Level: "info", FilePath: path}})
	require.NoError(t, err)

	l.Info("session cleared", Op("get_booking"))
	l.Debug("hidden at info level")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"session cleared"`)
	assert.Contains(t, string(data), `"op":"get_booking"`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	l := FromZap(zap.New(core))

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept", String("booking_id", "b1"))
	l.Error("kept", Err(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "b1", entries[0].ContextMap()["booking_id"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestGlobalLogger(t *testing.T) {
	prev := GetGlobalLogger()
	core, logs := observer.New(zap.DebugLevel)
	SetGlobalLogger(FromZap(zap.New(core)))
	t.Cleanup(func() { SetGlobalLogger(prev) })

	Debug("debug", RequestID("req-1"))
	Info("info", Duration("elapsed", time.Second))
	Warn("warn", Bool("session_invalidated", true))
	Error("error", Err(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, true, entries[2].ContextMap()["session_invalidated"])
}
