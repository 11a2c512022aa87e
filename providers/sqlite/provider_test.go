package sqlite

import (
	"context"
	"testing"

	"github.com/Konsultn-Engineering/sqlt/connector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_InMemory(t *testing.T) {
	ctx := context.Background()

	c, err := connector.New("sqlite", connector.Config{})
	require.NoError(t, err)

	conn, err := c.Connect(ctx)
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.Health(ctx))
	assert.Equal(t, "sqlite", conn.Dialect().Name())
	assert.NoError(t, conn.Database().PingContext(ctx))
}

func TestConnect_ConnectionLifecycle(t *testing.T) {
	ctx := context.Background()

	c, err := connector.New("sqlite", connector.Config{})
	require.NoError(t, err)
	conn, err := c.Connect(ctx)
	require.NoError(t, err)
	defer conn.Close()

	db := conn.Database()

	dbConn, err := db.Conn(ctx)
	require.NoError(t, err)

	stmt, err := dbConn.Prepare(ctx, "SELECT 1")
	require.NoError(t, err)

	rows, err := stmt.Query(ctx)
	require.NoError(t, err)
	require.True(t, rows.Next())

	var n int64
	require.NoError(t, rows.Scan(&n))
	assert.Equal(t, int64(1), n)
	assert.False(t, rows.Next())
	require.NoError(t, rows.Err())

	// Reverse acquisition order: rows, statement, connection.
	require.NoError(t, rows.Close())
	require.NoError(t, stmt.Close())
	require.NoError(t, dbConn.Close())
}

func TestBuildDSN(t *testing.T) {
	p := &Provider{}

	dsn := p.buildDSN(connector.Config{})
	assert.Contains(t, dsn, "file::memory:")
	assert.Contains(t, dsn, "_foreign_keys=on")
	assert.Contains(t, dsn, "_busy_timeout=5000")

	dsn = p.buildDSN(connector.Config{
		Path:   "/var/lib/app/app.db",
		Params: map[string]string{"_journal_mode": "WAL"},
	})
	assert.Contains(t, dsn, "file:/var/lib/app/app.db")
	assert.Contains(t, dsn, "_journal_mode=WAL")
}

func TestHealthAndStats(t *testing.T) {
	ctx := context.Background()

	c, err := connector.New("sqlite", connector.Config{})
	require.NoError(t, err)
	conn, err := c.Connect(ctx)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Health(ctx))
	stats := conn.Stats()
	assert.GreaterOrEqual(t, stats.OpenConnections, 0)
}
