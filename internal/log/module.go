package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/ipfans/fxlogger"
	"github.com/j0lvera/botcenter/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Params for creating the logger
type Params struct {
	fx.In

	Config *config.Config
}

// NewLogger creates a configured zerolog.Logger instance.
// Logs go to w so they stay off the menu written to stdout.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	logWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(logWriter).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

// Level resolves the configured level, DEBUG wins over LOG_LEVEL.
func Level(cfg *config.Config) zerolog.Level {
	if cfg.Debug {
		return zerolog.DebugLevel
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}

// New provides the application logger
func New(p Params) zerolog.Logger {
	return NewLogger(os.Stderr, Level(p.Config))
}

// EventLogger routes fx's own lifecycle events through zerolog.
func EventLogger(log zerolog.Logger) fxevent.Logger {
	return fxlogger.WithZerolog(log.With().Str("component", "fx").Logger())()
}

func Module() fx.Option {
	return fx.Module(
		"log",
		fx.Provide(
			New,
		),
	)
}
