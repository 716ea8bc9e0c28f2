package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// scanner is satisfied by both *sql.Row and *sql.Rows, letting single-row
// lookups and statement listings share the same scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// DB wraps the shared *sql.DB pool. Ledger writes go through BeginTx so a
// balance update and its movement record commit or roll back together.
type DB struct {
	pool *sql.DB
}

func NewDB(pool *sql.DB) *DB {
	return &DB{pool: pool}
}

func (d *DB) Conn() *sql.DB {
	return d.pool
}

func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	tx, err := d.pool.BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("BeginTx: %w", err)
	}
	return tx, nil
}
