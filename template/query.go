package template

import (
	"context"

	"github.com/Konsultn-Engineering/sqlt/database"
)

// QueryOne executes a fetch statement and maps at most one row.
//
// Zero matching rows is a normal result: the zero value of T, false, and a
// nil error. When rows match, the mapper is applied to the first row yielded
// by the driver; if the statement can match more than one row there is no
// guarantee which the driver yields first, so callers needing at-most-one
// should constrain the query. Remaining rows are not consumed; the whole
// cursor is released on return.
func QueryOne[T any](ctx context.Context, t *Template, query string, mapper RowMapper[T], args ...any) (T, bool, error) {
	var out T
	found := false

	err := t.withStatement(ctx, query, func(stmt database.Stmt) (err error) {
		rows, err := stmt.Query(ctx, args...)
		if err != nil {
			return err
		}
		// Surface the close error only when nothing earlier failed.
		defer func() {
			if cerr := rows.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		if !rows.Next() {
			return rows.Err()
		}
		v, merr := mapper(rows)
		if merr != nil {
			return merr
		}
		out = v
		found = true
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return out, found, nil
}

// QueryMany executes a fetch statement and maps every row in cursor order.
// Zero matching rows yields an empty, non-nil slice and no error.
func QueryMany[T any](ctx context.Context, t *Template, query string, mapper RowMapper[T], args ...any) ([]T, error) {
	results := make([]T, 0)

	err := t.withStatement(ctx, query, func(stmt database.Stmt) (err error) {
		rows, err := stmt.Query(ctx, args...)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rows.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		for rows.Next() {
			v, merr := mapper(rows)
			if merr != nil {
				return merr
			}
			results = append(results, v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
