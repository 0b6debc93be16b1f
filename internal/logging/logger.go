// =============================================================================
// CFDI Report - Logging
// =============================================================================
//
// Diagnostic logging for the report. The report itself owns stdout, so log
// output always goes to stderr (or any writer supplied by the caller).
//
// =============================================================================

package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New builds a console logger writing to w at the given level. Unknown
// levels fall back to warn. Every entry carries the run id.
func New(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}

	return zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("run_id", uuid.New().String()).
		Logger()
}

// ParseLevel converts a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return parsed
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
