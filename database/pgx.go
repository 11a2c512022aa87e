package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

// PgxDatabase implements Database for pgxpool.Pool without going through the
// database/sql compatibility layer.
type PgxDatabase struct {
	pool *pgxpool.Pool
}

// NewPgxDatabase creates a new PgxDatabase.
func NewPgxDatabase(pool *pgxpool.Pool) *PgxDatabase {
	return &PgxDatabase{pool: pool}
}

// Conn acquires a connection from the pool.
func (p *PgxDatabase) Conn(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &PgxConn{conn: conn}, nil
}

// PingContext verifies the connection to the database is alive.
func (p *PgxDatabase) PingContext(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close closes the pool.
func (p *PgxDatabase) Close() error {
	p.pool.Close()
	return nil
}

// Pool exposes the raw pool for callers that need driver-level access.
func (p *PgxDatabase) Pool() *pgxpool.Pool { return p.pool }

// PgxConn implements Conn for an acquired pgxpool connection.
type PgxConn struct {
	conn *pgxpool.Conn
}

// Prepare creates a server-side prepared statement on this connection. The
// statement name must be unique per connection; a ULID keeps names from
// colliding when a caller prepares the same SQL twice.
func (c *PgxConn) Prepare(ctx context.Context, query string) (Stmt, error) {
	name := "sqlt_" + ulid.Make().String()
	if _, err := c.conn.Conn().Prepare(ctx, name, query); err != nil {
		return nil, err
	}
	return &PgxStmt{conn: c.conn, name: name}, nil
}

// Close releases the connection back to the pool.
func (c *PgxConn) Close() error {
	c.conn.Release()
	return nil
}

// PgxStmt implements Stmt for a named server-side prepared statement.
type PgxStmt struct {
	conn *pgxpool.Conn
	name string
}

// Query executes the prepared statement; pgx resolves the statement by name.
func (s *PgxStmt) Query(ctx context.Context, args ...any) (Rows, error) {
	rows, err := s.conn.Query(ctx, s.name, args...)
	if err != nil {
		return nil, err
	}
	return &PgxRows{rows: rows}, nil
}

// Exec executes the prepared statement as a mutation.
func (s *PgxStmt) Exec(ctx context.Context, args ...any) (Result, error) {
	tag, err := s.conn.Exec(ctx, s.name, args...)
	if err != nil {
		return nil, err
	}
	return &PgxResult{cmdTag: tag}, nil
}

// Close deallocates the server-side statement. The statement belongs to the
// connection, so deallocation must happen before the connection is released.
func (s *PgxStmt) Close() error {
	return s.conn.Conn().Deallocate(context.Background(), s.name)
}

// PgxRows implements Rows for pgx.Rows.
type PgxRows struct {
	rows              pgx.Rows
	fieldDescriptions []pgconn.FieldDescription
}

// Next prepares the next result row for reading.
func (p *PgxRows) Next() bool { return p.rows.Next() }

// Scan copies the columns from the current row into the provided destinations.
func (p *PgxRows) Scan(dest ...any) error { return p.rows.Scan(dest...) }

// Columns returns the column names.
func (p *PgxRows) Columns() ([]string, error) {
	if p.fieldDescriptions == nil {
		p.fieldDescriptions = p.rows.FieldDescriptions()
	}
	columns := make([]string, len(p.fieldDescriptions))
	for i, fd := range p.fieldDescriptions {
		columns[i] = fd.Name
	}
	return columns, nil
}

// Err returns any error encountered during iteration.
func (p *PgxRows) Err() error { return p.rows.Err() }

// Close closes the rows iterator.
func (p *PgxRows) Close() error {
	p.rows.Close()
	return nil
}

// PgxResult implements Result for pgx command tags.
type PgxResult struct {
	cmdTag pgconn.CommandTag
}

// RowsAffected returns the number of rows affected by the command.
func (r *PgxResult) RowsAffected() (int64, error) {
	return r.cmdTag.RowsAffected(), nil
}

// Assert that PgxDatabase implements the Database interface.
var _ Database = (*PgxDatabase)(nil)
