package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestIntrospectSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, err = conn.Exec(`
		CREATE TABLE orders (id INTEGER PRIMARY KEY);
		CREATE TABLE customers (id INTEGER PRIMARY KEY AUTOINCREMENT);
	`)
	conn.Close()
	if err != nil {
		t.Fatalf("create tables: %v", err)
	}

	cat, err := Introspect(context.Background(), "sqlite://"+path, nil)
	if err != nil {
		t.Fatalf("Introspect: %v", err)
	}
	if cat.Type != SQLite || cat.Provider != "Microsoft.EntityFrameworkCore.Sqlite" {
		t.Errorf("catalog = %+v", cat)
	}
	if cat.ConnectionString != "Data Source="+path {
		t.Errorf("ConnectionString = %q", cat.ConnectionString)
	}
	// sqlite_sequence is internal and must not be listed
	if got := strings.Join(cat.Tables, ","); got != "customers,orders" {
		t.Errorf("Tables = %s", got)
	}
	if len(cat.Schemas) == 0 || cat.Schemas[0] != "main" {
		t.Errorf("Schemas = %v", cat.Schemas)
	}
}

func TestIntrospectRejectsConnectionStrings(t *testing.T) {
	if _, err := Introspect(context.Background(), "Host=x;Database=y", nil); err == nil {
		t.Error("expected error for non-url input")
	}
}

func TestDriverNotConnected(t *testing.T) {
	d, err := NewDriver(SQLite)
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.Tables(context.Background())
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Errorf("Tables() error = %v, want ConnectionError", err)
	}
	if _, err := NewDriver("oracle"); err == nil {
		t.Error("expected error for unknown driver")
	}
}
