package strategies

import (
	"io"

	"dizzycode.xyz/logstrategy/level"
)

// LevelFilter drops entries below a minimum level before they reach the inner strategy
type LevelFilter struct {
	inner Strategy
	min   level.Level
}

// NewLevelFilter wraps inner so only entries at or above min are delivered
func NewLevelFilter(inner Strategy, min level.Level) *LevelFilter {
	return &LevelFilter{inner: inner, min: min}
}

// Log implements the Strategy interface
func (f *LevelFilter) Log(entry Entry) error {
	if entry.Level < f.min {
		return nil
	}
	return f.inner.Log(entry)
}

// Sync implements the Strategy interface
func (f *LevelFilter) Sync() error {
	return f.inner.Sync()
}

// Close closes the inner strategy if it holds a resource
func (f *LevelFilter) Close() error {
	if c, ok := f.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Kind reports the inner strategy's kind
func (f *LevelFilter) Kind() string {
	return f.inner.Kind()
}
