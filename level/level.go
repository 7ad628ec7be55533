package level

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/zap/zapcore"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// Debug entries are voluminous diagnostics, usually disabled in production.
	Debug Level = iota - 1
	// Info is the default logging priority.
	Info
	// Warn entries are more important than Info, but don't need individual human review.
	Warn
	// Error entries are high-priority.
	Error
)

// String returns the upper-case name used in formatted lines
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the four known levels
func (l Level) Valid() bool {
	return l >= Debug && l <= Error
}

// ToZapLevel converts our Level to zapcore.Level
func (l Level) ToZapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ToZerologLevel converts our Level to zerolog.Level
func (l Level) ToZerologLevel() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Parse converts a string to Level. Unknown names map to Info.
func Parse(s string) Level {
	l, err := ParseStrict(s)
	if err != nil {
		return Info
	}
	return l
}

// ParseStrict converts a string to Level, case-insensitively, and rejects unknown names
func ParseStrict(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("unknown level %q (want debug, info, warn or error)", s)
	}
}
