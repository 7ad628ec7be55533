package strategies

import (
	"time"

	"dizzycode.xyz/logstrategy/level"
)

// TimeFormat is the ISO-8601 layout used in formatted lines
const TimeFormat = time.RFC3339

// Entry represents a single log entry
type Entry struct {
	Level   level.Level
	Message string
	Time    time.Time
}

// Strategy defines the interface for different logging strategies
type Strategy interface {
	// Log writes entry to the backing sink. Sink failures are reported as *SinkWriteError.
	Log(entry Entry) error
	// Sync flushes anything the sink buffers.
	Sync() error
	// Kind is the name the strategy is registered under ("console", "file", ...).
	Kind() string
}

// FormatLine renders entry as "[timestamp] LEVEL: message" without a trailing newline
func FormatLine(entry Entry) string {
	return formatLine(entry.Time.Format(TimeFormat), entry.Level.String(), entry.Message)
}

func formatLine(timestamp, lvl, message string) string {
	return "[" + timestamp + "] " + lvl + ": " + message
}
