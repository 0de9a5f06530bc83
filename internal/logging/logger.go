// Package logging configures zerolog for the server and CLI binaries.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// NewConsole returns a human-readable logger writing to stderr.
func NewConsole() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()
}

// ForComponent derives a child logger tagged with the owning component.
func ForComponent(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
