// Package logger provides the zerolog instance the rest of the bot logs
// through.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the shared logger. It starts as a console writer at info level;
// main adjusts it from config after loading.
var Log zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().
		Timestamp().
		Caller().
		Logger()
}

// SetLevel applies the LOG_LEVEL config value. Unknown or empty values
// keep the info default rather than failing startup.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// SetJSON switches the shared logger to plain JSON output for
// log-collector deployments.
func SetJSON() {
	Log = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()
}
