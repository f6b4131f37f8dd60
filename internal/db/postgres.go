package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// PostgresDriver implements Driver for PostgreSQL
type PostgresDriver struct {
	db     *sql.DB
	tunnel *SSHTunnel
}

// Connect establishes connection to PostgreSQL
func (d *PostgresDriver) Connect(ctx context.Context, params ConnectParams) error {
	connConfig, err := pgx.ParseConfig(params.URL)
	if err != nil {
		return WrapConnectionError(err)
	}

	if params.SSHConfig != nil && params.SSHConfig.Host != "" {
		tunnel, err := NewSSHTunnel(params.SSHConfig)
		if err != nil {
			return WrapConnectionError(fmt.Errorf("failed to create SSH tunnel: %w", err))
		}
		d.tunnel = tunnel

		// The SSH server resolves the database host, not the local machine
		connConfig.LookupFunc = func(ctx context.Context, host string) ([]string, error) {
			return []string{host}, nil
		}
		remoteAddr := net.JoinHostPort(connConfig.Host, fmt.Sprint(connConfig.Port))
		connConfig.DialFunc = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return tunnel.DialContext(ctx, network, remoteAddr)
		}
	}

	db, err := sql.Open("pgx", stdlib.RegisterConnConfig(connConfig))
	if err != nil {
		closeAll(nil, d.tunnel)
		return WrapConnectionError(err)
	}

	// Introspection needs a couple of short-lived connections at most
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(time.Minute)

	if err := db.PingContext(ctx); err != nil {
		closeAll(db, d.tunnel)
		d.tunnel = nil
		return WrapConnectionError(err)
	}

	d.db = db
	return nil
}

// Close closes the database connection and SSH tunnel
func (d *PostgresDriver) Close() error {
	return closeAll(d.db, d.tunnel)
}

// Ping checks if database is reachable
func (d *PostgresDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *PostgresDriver) Type() DriverType {
	return Postgres
}

// Schemas returns every non-system schema
func (d *PostgresDriver) Schemas(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, d.db, `
		SELECT nspname
		FROM pg_namespace
		WHERE nspname NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		AND nspname NOT LIKE 'pg_temp_%'
		AND nspname NOT LIKE 'pg_toast_temp_%'
		ORDER BY 1`)
}

// Tables returns schema-qualified tables and views in all non-system schemas
func (d *PostgresDriver) Tables(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, d.db, `
		SELECT n.nspname || '.' || c.relname
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE n.nspname NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
		AND c.relkind IN ('r', 'v', 'm', 'f', 'p')
		ORDER BY 1`)
}
