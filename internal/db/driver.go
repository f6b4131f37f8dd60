package db

import (
	"context"
	"database/sql"
	"fmt"
)

// DriverType represents supported database types
type DriverType string

const (
	Postgres DriverType = "postgres"
	MySQL    DriverType = "mysql"
	SQLite   DriverType = "sqlite"
)

// ConnectParams holds database connection details
type ConnectParams struct {
	URL       string     // postgres://, mysql://, user:pass@tcp(host)/db, sqlite:// or a file path
	SSHConfig *SSHConfig // Optional SSH tunnel config
}

// Driver defines the interface for schema introspection
type Driver interface {
	Connect(ctx context.Context, params ConnectParams) error
	Close() error
	Ping(ctx context.Context) error
	Type() DriverType
	Schemas(ctx context.Context) ([]string, error)
	Tables(ctx context.Context) ([]string, error)
}

// NewDriver creates a new driver instance by type
func NewDriver(driverType DriverType) (Driver, error) {
	switch driverType {
	case Postgres:
		return &PostgresDriver{}, nil
	case MySQL:
		return &MySQLDriver{}, nil
	case SQLite:
		return &SQLiteDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown driver type: %s", driverType)
	}
}

// queryStrings runs a single-column query and collects the values
func queryStrings(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	if db == nil {
		return nil, WrapConnectionError(fmt.Errorf("not connected"))
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, WrapQueryError(err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, WrapQueryError(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapQueryError(err)
	}
	return out, nil
}

func closeAll(db *sql.DB, tunnel *SSHTunnel) error {
	var dbErr error
	if db != nil {
		dbErr = db.Close()
	}
	if tunnel != nil {
		if err := tunnel.Close(); err != nil {
			if dbErr != nil {
				return fmt.Errorf("db close err: %v, tunnel close err: %w", dbErr, err)
			}
			return err
		}
	}
	return dbErr
}
