package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dizzycode.xyz/logstrategy/strategies"
)

// Execer is the subset of *pgx.Conn / *pgxpool.Pool used by Postgres
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Postgres stores records as rows of (level, message, logged_at)
type Postgres struct {
	db Execer
}

// NewPostgres creates a Postgres store on top of an open connection or pool
func NewPostgres(db Execer) *Postgres {
	return &Postgres{db: db}
}

// quoteTable sanitizes a possibly schema-qualified table name
func quoteTable(table string) string {
	return pgx.Identifier(strings.Split(table, ".")).Sanitize()
}

// EnsureTable creates table if it does not exist yet
func (p *Postgres) EnsureTable(ctx context.Context, table string) error {
	sql := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGSERIAL PRIMARY KEY,
	level TEXT NOT NULL,
	message TEXT NOT NULL,
	logged_at TIMESTAMPTZ NOT NULL
)`, quoteTable(table))

	if _, err := p.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// Insert implements strategies.Store
func (p *Postgres) Insert(ctx context.Context, table string, record strategies.Record) error {
	sql := fmt.Sprintf("INSERT INTO %s (level, message, logged_at) VALUES ($1, $2, $3)", quoteTable(table))

	tag, err := p.db.Exec(ctx, sql, record.Level, record.Message, record.Timestamp)
	if err != nil {
		return fmt.Errorf("postgres insert: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("postgres insert: expected 1 row affected, got %d", tag.RowsAffected())
	}
	return nil
}
