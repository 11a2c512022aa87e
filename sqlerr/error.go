package sqlerr

import (
	"errors"
	"fmt"
)

// Code classifies a data-access failure into a coarse category. The category
// is advisory; the wrapped cause remains authoritative.
type Code int

const (
	Other Code = iota
	ConnectionFailure
	SyntaxError
	BindFailure
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

func (c Code) String() string {
	switch c {
	case ConnectionFailure:
		return "connection_failure"
	case SyntaxError:
		return "syntax_error"
	case BindFailure:
		return "bind_failure"
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	default:
		return "other"
	}
}

// Error is the data-access failure envelope. It wraps exactly one underlying
// driver error and records the SQL text that was being executed.
type Error struct {
	Code  Code
	Query string

	// Postgres detail, populated when the cause is a *pgconn.PgError.
	SQLState       string
	TableName      string
	ConstraintName string

	cause error
}

func (e *Error) Error() string {
	if e.Code == Other {
		return fmt.Sprintf("data access failure: %v", e.cause)
	}
	return fmt.Sprintf("data access failure (%s): %v", e.Code, e.cause)
}

// Unwrap exposes the original driver error to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns the wrapped driver error directly.
func (e *Error) Cause() error {
	return e.cause
}

// ErrCode reports the Code carried by err, or Other when err is not (and does
// not wrap) an *Error.
func ErrCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Other
}
