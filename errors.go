package logstrategy

import (
	"errors"
	"fmt"

	"dizzycode.xyz/logstrategy/strategies"
)

// SinkWriteError is returned when a strategy's sink fails; see strategies.SinkWriteError.
type SinkWriteError = strategies.SinkWriteError

// UnknownStrategyError is returned by the factory for a kind nothing is registered under
type UnknownStrategyError struct {
	Kind string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy kind %q", e.Kind)
}

// InvalidConfigurationError reports a missing or malformed parameter for a kind
type InvalidConfigurationError struct {
	Kind  string
	Field string
	// Reason is empty when the field is missing.
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s strategy: missing required parameter %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s strategy: invalid parameter %q: %s", e.Kind, e.Field, e.Reason)
}

// InvalidArgumentError is returned when a Logger is given no strategy or an unknown level
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// ErrNilStrategy is returned by New and SetStrategy for a nil strategy
var ErrNilStrategy error = &InvalidArgumentError{Argument: "strategy", Reason: "must not be nil"}

// IsSinkWriteError reports whether err carries a SinkWriteError
func IsSinkWriteError(err error) bool {
	var sinkErr *SinkWriteError
	return errors.As(err, &sinkErr)
}
