package db

import (
	"context"
	"fmt"
	"log"
)

// Catalog is what introspection found behind a connection URL
type Catalog struct {
	Type             DriverType
	Provider         string
	ConnectionString string
	Schemas          []string
	Tables           []string
}

// Introspect connects to the database behind raw and lists its schemas and tables
func Introspect(ctx context.Context, raw string, tunnel *SSHConfig) (*Catalog, error) {
	t := DetectType(raw)
	if t == "" {
		return nil, fmt.Errorf("introspection needs a postgres://, mysql:// or sqlite:// url")
	}

	d, err := NewDriver(t)
	if err != nil {
		return nil, err
	}
	if err := d.Connect(ctx, ConnectParams{URL: raw, SSHConfig: tunnel}); err != nil {
		return nil, err
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("introspect: close: %v", err)
		}
	}()

	schemas, err := d.Schemas(ctx)
	if err != nil {
		return nil, err
	}
	tables, err := d.Tables(ctx)
	if err != nil {
		return nil, err
	}

	cs, err := ToConnectionString(raw)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Type:             t,
		Provider:         ProviderFor(t),
		ConnectionString: cs,
		Schemas:          schemas,
		Tables:           tables,
	}, nil
}
