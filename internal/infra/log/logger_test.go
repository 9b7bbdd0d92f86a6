package logs

import (
	"log/slog"
	"testing"

	"mealmarket/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}

	for input, expected := range tests {
		level, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "mealmarket"
	cfg.Env.Log.Level = "debug"
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg})

	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
