// Package logs builds the service-wide structured logger from config.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"faithcompanion/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params carries the logger's dependencies for fx injection.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the slog.Logger every layer of the service logs through.
// JSON output is the default; the pretty flag switches to a text handler
// for local development.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var logger *slog.Logger
	if params.Config.Env.Log.Pretty {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	return logger, nil
}

// parseLogLevel maps the configured level name onto slog.Level.
// An unknown name is an error rather than a silent fallback.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
