// Package log configures the process-wide zerolog logger. User-facing CLI
// output goes through fmt; zerolog carries the diagnostic trail (subprocess
// invocations, pipeline steps) enabled with --verbose.
package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. Verbose enables debug
// level; otherwise only warnings and errors surface.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
