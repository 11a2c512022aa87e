package connector

import (
	"context"

	"github.com/Konsultn-Engineering/sqlt/dialect"
)

// Provider knows how to open connections for one database engine. Engine
// packages register themselves under a name via Register in their init.
type Provider interface {
	Connect(ctx context.Context, config Config) (Connection, error)
	Dialect() dialect.Dialect
	HealthCheck(ctx context.Context, conn Connection) error
}
