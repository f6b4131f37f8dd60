package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDriver implements Driver for SQLite
type SQLiteDriver struct {
	db *sql.DB
}

// Connect opens the database file. SSH tunnels do not apply to SQLite.
func (d *SQLiteDriver) Connect(ctx context.Context, params ConnectParams) error {
	db, err := sql.Open("sqlite3", sqlitePath(params.URL))
	if err != nil {
		return WrapConnectionError(err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 10000"); err != nil {
		db.Close()
		return WrapConnectionError(fmt.Errorf("pragma busy_timeout: %w", err))
	}

	d.db = db
	return nil
}

// Close closes the database connection
func (d *SQLiteDriver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Ping checks if database is reachable
func (d *SQLiteDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *SQLiteDriver) Type() DriverType {
	return SQLite
}

// Schemas returns the attached database names (main, temp, ...)
func (d *SQLiteDriver) Schemas(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, d.db, "SELECT name FROM pragma_database_list ORDER BY seq")
}

// Tables returns the user tables of the main database
func (d *SQLiteDriver) Tables(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, d.db, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
}
