package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Verbose bool      // debug level instead of warn
	Output  io.Writer // optional writer (defaults to os.Stderr)
	NoColor bool
}

var (
	mu   sync.Mutex
	base = zerolog.Nop()
)

// Configure replaces the global logger. Warnings and errors are the default
// since stdout may be captured by the build system.
func Configure(cfg Config) {
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	} else if env := os.Getenv("LAUNCHGEN_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(zerolog.ConsoleWriter{
		Out:          out,
		NoColor:      cfg.NoColor,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(level)
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
