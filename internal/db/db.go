// Package db provides the SQLite integration for studentquery.
//
// It wraps a database/sql handle and exposes a callback based execution
// primitive that hands every result row to a RowFunc as optional text.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrAborted is returned by ExecRows when the RowFunc stops the iteration.
var ErrAborted = errors.New("query aborted by row callback")

// RowFunc is called once per result row with the value of every column as
// optional text and the column names, in the order of the projection.
//
// Returning a non-nil error stops the iteration.
type RowFunc func(values []sql.NullString, columns []string) error

// Config represents the configuration for the Open function.
type Config struct {
	// Path is the path to an existing SQLite database file.
	Path string
	// Driver is the database/sql driver used to open Path.
	Driver Driver
}

// DB represents an open SQLite database.
type DB struct {
	conn *sql.DB
}

// Open opens the SQLite database file at config.Path for reading and
// writing. The file must already exist.
func Open(ctx context.Context, config Config) (*DB, error) {
	if config.Path == "" {
		return nil, errors.New("database path is empty")
	}

	driver := config.Driver
	if driver.Value == "" {
		driver = DriverMattn
	}
	if !Drivers.Contains(driver) {
		return nil, fmt.Errorf("unsupported driver %q", driver.Value)
	}

	conn, err := sql.Open(driver.Value, dsn(config.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	conn.SetConnMaxIdleTime(0)
	conn.SetConnMaxLifetime(0)
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping connection: %w", err)
	}

	return &DB{conn: conn}, nil
}

// ExecRows runs query and calls fn synchronously for every result row.
//
// NULL columns are delivered with Valid set to false, every other value is
// delivered in its text form. Each call receives its own values slice.
func (db *DB) ExecRows(ctx context.Context, query string, fn RowFunc) error {
	if db.conn == nil {
		return errors.New("database is closed")
	}

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read columns: %w", err)
	}

	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		if err := fn(values, columns); err != nil {
			return fmt.Errorf("%w: %w", ErrAborted, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate rows: %w", err)
	}

	return nil
}

// Close closes the database. It is safe to call more than once.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	db.conn = nil

	return nil
}
