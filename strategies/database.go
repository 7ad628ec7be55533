package strategies

import (
	"context"
	"fmt"
	"time"
)

// DefaultTable is the table used when none is configured
const DefaultTable = "logs"

// Record is the row shape inserted by the Database strategy
type Record struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is the connection abstraction the Database strategy writes through.
// Implementations live in the store package (postgres, redis, memory).
type Store interface {
	Insert(ctx context.Context, table string, record Record) error
}

// Database inserts every entry as a Record into a table of a Store
type Database struct {
	store   Store
	table   string
	timeout time.Duration
}

// DatabaseOptions configures the Database strategy
type DatabaseOptions struct {
	// Table defaults to DefaultTable.
	Table string
	// Timeout bounds each insert. Zero means no deadline.
	Timeout time.Duration
}

// NewDatabase creates a Database strategy on top of store
func NewDatabase(store Store, opts ...DatabaseOptions) *Database {
	d := &Database{store: store, table: DefaultTable}

	if len(opts) > 0 {
		if opts[0].Table != "" {
			d.table = opts[0].Table
		}
		d.timeout = opts[0].Timeout
	}

	return d
}

// Table returns the configured table name
func (d *Database) Table() string {
	return d.table
}

// Log implements the Strategy interface. Failed inserts are not retried.
func (d *Database) Log(entry Entry) error {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	record := Record{
		Level:     entry.Level.String(),
		Message:   entry.Message,
		Timestamp: entry.Time,
	}

	if err := d.store.Insert(ctx, d.table, record); err != nil {
		return sinkError(KindDatabase, fmt.Errorf("failed to insert into %s: %w", d.table, err))
	}
	return nil
}

// Sync implements the Strategy interface
func (d *Database) Sync() error {
	return nil
}

// Kind implements the Strategy interface
func (d *Database) Kind() string {
	return KindDatabase
}
