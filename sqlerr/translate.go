package sqlerr

import (
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Wrap translates err into an *Error carrying the SQL text that failed.
// A nil err returns nil; an err that already is (or wraps) an *Error is
// returned unchanged so double translation never stacks envelopes.
func Wrap(err error, query string) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}

	e := &Error{
		Code:  classify(err),
		Query: query,
		cause: err,
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		e.Code = MapCode(pgErr.Code)
		e.SQLState = pgErr.Code
		e.TableName = pgErr.TableName
		e.ConstraintName = pgErr.ConstraintName
	}
	return e
}

// MapCode maps a Postgres SQLSTATE to a Code. Unrecognized states fall back
// to class-level mapping, then Other.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}

	if len(sqlstate) >= 2 {
		switch sqlstate[:2] {
		case "08": // connection exception
			return ConnectionFailure
		case "42": // syntax error or access rule violation
			return SyntaxError
		case "22": // data exception: bad parameter values, casts
			return BindFailure
		}
	}
	return Other
}

// classify handles non-Postgres causes. Drivers without structured codes are
// matched on error shape: network-level failures map to ConnectionFailure,
// everything else is Other.
func classify(err error) Code {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ConnectionFailure
	}
	// go-sqlite3 reports prepare-time problems as plain errors; recognize the
	// common syntax message so both wired drivers classify alike.
	if strings.Contains(err.Error(), "syntax error") {
		return SyntaxError
	}
	return Other
}
