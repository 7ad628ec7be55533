// Package logstrategy provides a Logger that delegates every record to one
// interchangeable output strategy (console, file, database, ...), and a Factory
// that builds strategies by name.
//
// A Logger serializes all log calls and strategy swaps behind a single mutex:
// records from concurrent callers reach the sink one at a time, and a swap
// takes effect for the next call that acquires the lock.
package logstrategy

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"time"

	"dizzycode.xyz/logstrategy/level"
	"dizzycode.xyz/logstrategy/strategies"
)

// Logger forwards records to its current strategy
type Logger struct {
	mu       sync.Mutex
	strategy strategies.Strategy
	minLevel level.Level
	now      func() time.Time
}

// Option is a function that configures a Logger
type Option func(*Logger)

// WithMinLevel drops records below lvl without reaching the strategy
func WithMinLevel(lvl level.Level) Option {
	return func(l *Logger) {
		l.minLevel = lvl
	}
}

// WithClock replaces time.Now as the source of record timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a logger writing to strategy. A nil strategy, including a typed nil
// pointer, fails with ErrNilStrategy.
func New(strategy strategies.Strategy, opts ...Option) (*Logger, error) {
	if isNilStrategy(strategy) {
		return nil, ErrNilStrategy
	}

	l := &Logger{
		strategy: strategy,
		minLevel: level.Debug,
		now:      time.Now,
	}

	// Apply options
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// MustNew creates a logger and panics on error
func MustNew(strategy strategies.Strategy, opts ...Option) *Logger {
	l, err := New(strategy, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// NewNopLogger creates a logger that discards all output
// Useful for testing
func NewNopLogger() *Logger {
	return MustNew(strategies.NewNop())
}

// SetStrategy replaces the current strategy. The previous one is left open,
// closing it is up to the caller.
func (l *Logger) SetStrategy(strategy strategies.Strategy) error {
	if isNilStrategy(strategy) {
		return ErrNilStrategy
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.strategy = strategy
	return nil
}

// isNilStrategy also catches interface values holding a nil pointer, map, slice, func or chan
func isNilStrategy(strategy strategies.Strategy) bool {
	if strategy == nil {
		return true
	}
	v := reflect.ValueOf(strategy)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Strategy returns the current strategy
func (l *Logger) Strategy() strategies.Strategy {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.strategy
}

// Log stamps message with lvl and the current time and hands it to the current
// strategy. Sink errors are returned unchanged; a level outside Debug..Error
// fails with *InvalidArgumentError.
func (l *Logger) Log(lvl level.Level, message string) error {
	if !lvl.Valid() {
		return &InvalidArgumentError{Argument: "level", Reason: fmt.Sprintf("unknown level %d", lvl)}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if lvl < l.minLevel {
		return nil
	}

	return l.strategy.Log(strategies.Entry{
		Level:   lvl,
		Message: message,
		Time:    l.now(),
	})
}

// Debug logs a debug-level message
func (l *Logger) Debug(message string) error {
	return l.Log(level.Debug, message)
}

// Info logs an info-level message
func (l *Logger) Info(message string) error {
	return l.Log(level.Info, message)
}

// Warn logs a warn-level message
func (l *Logger) Warn(message string) error {
	return l.Log(level.Warn, message)
}

// Error logs an error-level message
func (l *Logger) Error(message string) error {
	return l.Log(level.Error, message)
}

// Sync flushes the current strategy
// This should be called before the application exits
func (l *Logger) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.strategy.Sync()
}

// Close releases the current strategy's sink if it holds one
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.strategy.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
