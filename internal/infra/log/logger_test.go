package logs

import (
	"context"
	"log/slog"
	"testing"

	"bistro/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "bistro"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNew_RespectsConfiguredLevel(t *testing.T) {
	logger, err := New(Params{Config: newLogConfig("warn", false)})
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
}

func TestNew_PrettyOutput(t *testing.T) {
	logger, err := New(Params{Config: newLogConfig("debug", true)})
	require.NoError(t, err)

	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New(Params{Config: newLogConfig("verbose", false)})

	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := parseLogLevel(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
