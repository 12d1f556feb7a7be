package logs

import (
	"log/slog"
	"testing"

	"faithcompanion/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "WARN", want: slog.LevelWarn},
		{level: "Error", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := parseLogLevel(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loudest"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestNew_BuildsLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "info"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, logger)
}
