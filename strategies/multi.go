package strategies

import (
	"io"

	"go.uber.org/multierr"
)

// Multi fans every entry out to several strategies. Each inner strategy is attempted
// even when an earlier one fails; the failures are combined into one error.
type Multi struct {
	strategies []Strategy
}

// NewMulti creates a Multi strategy. Nil strategies are skipped.
func NewMulti(strats ...Strategy) *Multi {
	m := &Multi{strategies: make([]Strategy, 0, len(strats))}
	for _, s := range strats {
		if s != nil {
			m.strategies = append(m.strategies, s)
		}
	}
	return m
}

// Strategies returns the inner strategies
func (m *Multi) Strategies() []Strategy {
	return m.strategies
}

// Log implements the Strategy interface
func (m *Multi) Log(entry Entry) error {
	var err error
	for _, s := range m.strategies {
		err = multierr.Append(err, s.Log(entry))
	}
	return err
}

// Sync implements the Strategy interface
func (m *Multi) Sync() error {
	var err error
	for _, s := range m.strategies {
		err = multierr.Append(err, s.Sync())
	}
	return err
}

// Close closes every inner strategy that holds a resource
func (m *Multi) Close() error {
	var err error
	for _, s := range m.strategies {
		if c, ok := s.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

// Kind implements the Strategy interface
func (m *Multi) Kind() string {
	return KindMulti
}
