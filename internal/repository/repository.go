// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch and persist data,
// abstracting SQL logic away from the service layer. Queries use a single
// dialect accepted by both PostgreSQL and DuckDB ($n placeholders,
// INSERT ... RETURNING).
package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the subset of *sql.DB and *sql.Tx used by the repositories.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// notFound tags a no-rows error with its table so sqlerr.HandleError
// can name the missing entity.
func notFound(table string, err error) error {
	return fmt.Errorf("table:%s: %w", table, err)
}

// collect scans every row with scan, returning an empty (non-nil) slice
// when the query matches nothing.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
