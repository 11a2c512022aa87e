package database

import (
	"context"
	"database/sql"
)

// SqlDatabase implements Database for *sql.DB.
type SqlDatabase struct {
	db *sql.DB
}

// NewSqlDatabase creates a new SqlDatabase.
func NewSqlDatabase(db *sql.DB) *SqlDatabase {
	return &SqlDatabase{db: db}
}

// Conn checks out a dedicated connection from the pool.
func (s *SqlDatabase) Conn(ctx context.Context) (Conn, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &SqlConn{conn: conn}, nil
}

// PingContext verifies the connection to the database is alive.
func (s *SqlDatabase) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SqlDatabase) Close() error { return s.db.Close() }

// SetMaxOpenConns sets the maximum number of open connections.
func (s *SqlDatabase) SetMaxOpenConns(n int) { s.db.SetMaxOpenConns(n) }

// SetMaxIdleConns sets the maximum number of idle connections.
func (s *SqlDatabase) SetMaxIdleConns(n int) { s.db.SetMaxIdleConns(n) }

// Stats returns the underlying pool statistics.
func (s *SqlDatabase) Stats() sql.DBStats { return s.db.Stats() }

// DB exposes the raw *sql.DB for callers that need driver-level access.
func (s *SqlDatabase) DB() *sql.DB { return s.db }

// SqlConn implements Conn for *sql.Conn.
type SqlConn struct {
	conn *sql.Conn
}

// Prepare creates a prepared statement bound to this connection.
func (c *SqlConn) Prepare(ctx context.Context, query string) (Stmt, error) {
	stmt, err := c.conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &SqlStmt{stmt: stmt}, nil
}

// Close returns the connection to the pool.
func (c *SqlConn) Close() error { return c.conn.Close() }

// SqlStmt implements Stmt for *sql.Stmt.
type SqlStmt struct {
	stmt *sql.Stmt
}

// Query executes the statement with positional arguments bound in order.
func (s *SqlStmt) Query(ctx context.Context, args ...any) (Rows, error) {
	rows, err := s.stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	return &SqlRows{rows: rows}, nil
}

// Exec executes the statement as a mutation.
func (s *SqlStmt) Exec(ctx context.Context, args ...any) (Result, error) {
	res, err := s.stmt.ExecContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	return res, nil // database/sql.Result implements Result
}

// Close closes the prepared statement.
func (s *SqlStmt) Close() error { return s.stmt.Close() }

// SqlRows implements Rows for *sql.Rows.
type SqlRows struct {
	rows *sql.Rows
}

// Next prepares the next result row for reading.
func (s *SqlRows) Next() bool { return s.rows.Next() }

// Scan copies the columns from the current row into the provided destinations.
func (s *SqlRows) Scan(dest ...any) error { return s.rows.Scan(dest...) }

// Columns returns the column names.
func (s *SqlRows) Columns() ([]string, error) { return s.rows.Columns() }

// Err returns any error encountered during iteration.
func (s *SqlRows) Err() error { return s.rows.Err() }

// Close closes the rows iterator.
func (s *SqlRows) Close() error { return s.rows.Close() }

// Assert that SqlDatabase implements the Database interface.
var _ Database = (*SqlDatabase)(nil)
