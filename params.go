package logstrategy

import (
	"fmt"
	"time"
)

// Params carries the per-kind configuration handed to the factory
type Params map[string]any

// requireString returns params[field] as a non-empty string
func (p Params) requireString(kind, field string) (string, error) {
	s, ok, err := p.optionalString(kind, field)
	if err != nil {
		return "", err
	}
	if !ok || s == "" {
		return "", &InvalidConfigurationError{Kind: kind, Field: field}
	}
	return s, nil
}

func (p Params) optionalString(kind, field string) (string, bool, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, wrongType(kind, field, "string", v)
	}
	return s, true, nil
}

func (p Params) optionalBool(kind, field string) (bool, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(kind, field, "bool", v)
	}
	return b, nil
}

func (p Params) optionalInt(kind, field string) (int, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, &InvalidConfigurationError{Kind: kind, Field: field, Reason: "must not be negative"}
		}
		return n, nil
	case int64:
		if n < 0 {
			return 0, &InvalidConfigurationError{Kind: kind, Field: field, Reason: "must not be negative"}
		}
		return int(n), nil
	default:
		return 0, wrongType(kind, field, "int", v)
	}
}

// optionalDuration accepts a time.Duration or a string understood by time.ParseDuration
func (p Params) optionalDuration(kind, field string) (time.Duration, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return 0, nil
	}
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, &InvalidConfigurationError{Kind: kind, Field: field, Reason: err.Error()}
		}
		return parsed, nil
	default:
		return 0, wrongType(kind, field, "duration", v)
	}
}

func wrongType(kind, field, want string, got any) error {
	return &InvalidConfigurationError{
		Kind:   kind,
		Field:  field,
		Reason: fmt.Sprintf("expected %s, got %T", want, got),
	}
}
