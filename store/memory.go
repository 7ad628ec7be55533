package store

import (
	"context"
	"sync"

	"dizzycode.xyz/logstrategy/strategies"
)

// Memory keeps records in process, grouped by table
type Memory struct {
	mu     sync.Mutex
	tables map[string][]strategies.Record
	err    error
}

// NewMemory creates an empty Memory store
func NewMemory() *Memory {
	return &Memory{tables: make(map[string][]strategies.Record)}
}

// FailWith makes every following Insert return err. Pass nil to recover.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Insert implements strategies.Store
func (m *Memory) Insert(ctx context.Context, table string, record strategies.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.tables[table] = append(m.tables[table], record)
	return nil
}

// Records returns a copy of the records stored for table
func (m *Memory) Records(table string) []strategies.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]strategies.Record, len(m.tables[table]))
	copy(out, m.tables[table])
	return out
}
