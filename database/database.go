package database

import "context"

// Database hands out connections on demand. Pooling and reuse policy live
// behind this interface; callers acquire a Conn per operation and give it
// back via Close.
type Database interface {
	Conn(ctx context.Context) (Conn, error)
	PingContext(ctx context.Context) error
	Close() error
}

// Conn is a single live connection. Close returns it to the owning pool.
type Conn interface {
	Prepare(ctx context.Context, query string) (Stmt, error)
	Close() error
}

// Stmt is a prepared statement scoped to the Conn that created it. It must be
// closed before its connection.
type Stmt interface {
	Query(ctx context.Context, args ...any) (Rows, error)
	Exec(ctx context.Context, args ...any) (Result, error)
	Close() error
}

// Rows is the cursor over a query result. Err reports any failure encountered
// during iteration after Next returns false.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	Err() error
	Close() error
}

// Result reports the outcome of a mutation statement.
type Result interface {
	RowsAffected() (int64, error)
}
