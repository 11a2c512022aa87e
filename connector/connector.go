package connector

import (
	"context"

	"github.com/Konsultn-Engineering/sqlt/database"
	"github.com/Konsultn-Engineering/sqlt/dialect"
)

// Connection is a live, pooled attachment to a database engine. Database()
// is what the execution template consumes; everything else is operational
// surface for the embedding application.
type Connection interface {
	Database() database.Database
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Stats() ConnectionStats
	Close() error
}

// Connector establishes Connections for one configured target.
type Connector interface {
	Connect(ctx context.Context) (Connection, error)
	ConnectWithRetry(ctx context.Context, opts RetryOptions) (Connection, error)
	Close() error
}
