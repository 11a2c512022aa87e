package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Konsultn-Engineering/sqlt/connector"
	"github.com/Konsultn-Engineering/sqlt/database"
	"github.com/Konsultn-Engineering/sqlt/dialect"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// busyTimeout is the default time to wait on a locked database.
const busyTimeout = 5 * time.Second

type Provider struct{}

func init() {
	connector.Register("sqlite", &Provider{})
}

// buildDSN assembles a go-sqlite3 connection string. Foreign keys and a busy
// timeout are always on; WAL is left to cfg.Params["_journal_mode"].
func (p *Provider) buildDSN(cfg connector.Config) string {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", path, busyTimeout.Milliseconds())
	for k, v := range cfg.Params {
		dsn += "&" + k + "=" + v
	}
	return dsn
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	db, err := sql.Open("sqlite3", p.buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// SQLite supports a single writer; a one-connection pool also keeps
	// in-memory databases visible across sequential acquisitions.
	maxOpen := cfg.Pool.MaxOpen
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("verifying sqlite connection: %w", err)
	}

	return &connection{
		db:      database.NewSqlDatabase(db),
		raw:     db,
		dialect: dialect.NewSQLiteDialect(),
	}, nil
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewSQLiteDialect()
}

func (p *Provider) HealthCheck(ctx context.Context, conn connector.Connection) error {
	return conn.Health(ctx)
}

type connection struct {
	db      *database.SqlDatabase
	raw     *sql.DB
	dialect dialect.Dialect
}

func (c *connection) Database() database.Database {
	return c.db
}

func (c *connection) Dialect() dialect.Dialect {
	return c.dialect
}

func (c *connection) Health(ctx context.Context) error {
	var result int
	if err := c.raw.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("sqlite health check failed: %w", err)
	}
	return nil
}

func (c *connection) Stats() connector.ConnectionStats {
	s := c.raw.Stats()
	return connector.ConnectionStats{
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
	}
}

func (c *connection) Close() error {
	return c.raw.Close()
}
