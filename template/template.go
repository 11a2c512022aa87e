// Package template implements the SQL execution template: a fixed skeleton
// that acquires a connection, prepares and binds a statement, executes it,
// optionally maps rows, and releases every handle on every exit path.
//
// The template owns no shared state across calls and never retains a handle
// past return, so a single Template is safe for concurrent use as long as the
// injected database.Database tolerates concurrent acquisition. Transactions,
// retries, and timeouts are deliberately absent; each operation is a single
// attempt inside whatever connection context the provider supplies.
package template

import (
	"context"

	"github.com/Konsultn-Engineering/sqlt/database"
	"github.com/Konsultn-Engineering/sqlt/sqlerr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Template executes parameterized SQL against an injected connection source.
type Template struct {
	db  database.Database
	log zerolog.Logger
}

// Option configures a Template.
type Option func(*Template)

// WithLogger attaches a logger. Each execution logs the SQL text at debug
// level, tagged with a per-call query id, before any failure is translated.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Template) { t.log = log }
}

// New creates a Template over db. Logging is off unless WithLogger is given.
func New(db database.Database, opts ...Option) *Template {
	t := &Template{
		db:  db,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Update executes a mutation statement and returns the affected-row count.
// Parameters bind positionally and in order: args[0] to the first
// placeholder, args[1] to the second, and so on. The count may be ignored by
// callers that do not need it. The template adds no idempotence of its own;
// running the same insert twice inserts twice.
func (t *Template) Update(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64
	err := t.withStatement(ctx, query, func(stmt database.Stmt) error {
		res, err := stmt.Exec(ctx, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// withStatement is the shared resource-management skeleton. It acquires a
// connection, prepares the statement, hands it to fn, and releases statement
// then connection in reverse acquisition order on every exit path. Any error
// from any stage leaves as a *sqlerr.Error.
func (t *Template) withStatement(ctx context.Context, query string, fn func(stmt database.Stmt) error) error {
	log := t.log.With().Str("query_id", uuid.NewString()).Logger()
	log.Debug().Str("query", query).Msg("executing statement")

	conn, err := t.db.Conn(ctx)
	if err != nil {
		return t.fail(log, query, err)
	}
	defer conn.Close()

	stmt, err := conn.Prepare(ctx, query)
	if err != nil {
		return t.fail(log, query, err)
	}
	defer stmt.Close()

	if err := fn(stmt); err != nil {
		return t.fail(log, query, err)
	}
	return nil
}

// fail logs the cause before translating it into the failure envelope.
func (t *Template) fail(log zerolog.Logger, query string, err error) error {
	log.Error().Err(err).Str("query", query).Msg("statement failed")
	return sqlerr.Wrap(err, query)
}
