package store

import (
	"context"
	"fmt"

	"videoapi/internal/core"
	"videoapi/internal/store/dynamo"
	"videoapi/internal/store/memory"
	"videoapi/internal/store/postgres"
	"videoapi/internal/store/sqlite"
)

// Supported values for Options.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

// Store is a core.Store that owns a connection which must be released.
type Store interface {
	core.Store

	// Close closes the store connection
	Close() error
}

// Options selects and configures a storage backend.
type Options struct {
	Driver         string // sqlite (default), postgres, dynamodb, memory
	SQLitePath     string
	PostgresDSN    string
	DynamoTable    string
	DynamoEndpoint string // optional override, e.g. http://localhost:8000
}

// Open builds the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "", DriverSQLite:
		s, err := sqlite.Open(opts.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return s, nil
	case DriverPostgres:
		s, err := postgres.Open(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return s, nil
	case DriverDynamoDB:
		s, err := dynamo.Open(ctx, opts.DynamoTable, opts.DynamoEndpoint)
		if err != nil {
			return nil, fmt.Errorf("open dynamodb: %w", err)
		}
		return s, nil
	case DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
