package postgres

import (
	"context"
	"database/sql"
)

// RowScanner is the part of *sql.Rows the repository reads through.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// Queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type queryerDB struct {
	q Queryer
}

// NewSQLDB adapts a database/sql handle to DB.
func NewSQLDB(q Queryer) DB {
	return queryerDB{q: q}
}

func (d queryerDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := d.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
