package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLDriver implements Driver for MySQL
type MySQLDriver struct {
	db     *sql.DB
	tunnel *SSHTunnel
}

// Connect establishes connection to MySQL
func (d *MySQLDriver) Connect(ctx context.Context, params ConnectParams) error {
	cfg, err := mysqlConfig(params.URL)
	if err != nil {
		return WrapConnectionError(err)
	}

	if params.SSHConfig != nil && params.SSHConfig.Host != "" {
		tunnel, err := NewSSHTunnel(params.SSHConfig)
		if err != nil {
			return WrapConnectionError(fmt.Errorf("failed to create SSH tunnel: %w", err))
		}
		d.tunnel = tunnel

		dialThrough(cfg, tunnel)
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		closeAll(nil, d.tunnel)
		return WrapConnectionError(err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(time.Minute)

	// sql.OpenDB is lazy
	if err := db.PingContext(ctx); err != nil {
		closeAll(db, d.tunnel)
		d.tunnel = nil
		return WrapConnectionError(err)
	}

	d.db = db
	return nil
}

// Close closes the database connection and SSH tunnel
func (d *MySQLDriver) Close() error {
	return closeAll(d.db, d.tunnel)
}

// Ping checks if database is reachable
func (d *MySQLDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return WrapConnectionError(fmt.Errorf("not connected"))
	}
	return d.db.PingContext(ctx)
}

// Type returns the driver type
func (d *MySQLDriver) Type() DriverType {
	return MySQL
}

// Schemas returns the current database; MySQL has no schemas below it
func (d *MySQLDriver) Schemas(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, d.db, "SELECT DATABASE() FROM DUAL WHERE DATABASE() IS NOT NULL")
}

// Tables returns the tables of the current database
func (d *MySQLDriver) Tables(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, d.db, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		ORDER BY table_name`)
}

type contextDialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// dialThrough routes the connector's TCP dials over d. The dialer lives on
// the config, so no global network name is registered per tunnel.
func dialThrough(cfg *mysql.Config, d contextDialer) {
	cfg.DialFunc = func(ctx context.Context, _, addr string) (net.Conn, error) {
		return d.DialContext(ctx, "tcp", addr)
	}
}
