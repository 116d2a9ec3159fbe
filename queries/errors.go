package queries

import (
	"errors"
	"fmt"
)

// Validation sentinels. Every ValidationError wraps exactly one of these.
var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrUnsupportedValue  = errors.New("unsupported value type")
	ErrLengthMismatch    = errors.New("length mismatch")
	ErrInvalidCombinator = errors.New("invalid combinator")
	ErrInvalidOperator   = errors.New("invalid aggregate operator")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidOption     = errors.New("invalid pattern option")
	ErrInvalidDirection  = errors.New("invalid order direction")
	ErrInvalidLimit      = errors.New("invalid limit")
	ErrMissingArgument   = errors.New("missing argument")
	ErrUnknownDialect    = errors.New("unknown dialect")
	ErrTableNotFound     = errors.New("table not found")
)

// Database fault categories. A *DatabaseError matches one of these with
// errors.Is when the driver reported the corresponding constraint failure.
var (
	ErrUniqueViolation  = errors.New("unique violation")
	ErrValueTooLong     = errors.New("value too long")
	ErrNotNullViolation = errors.New("not-null violation")
)

// ValidationError reports a request rejected before any SQL was sent.
type ValidationError struct {
	Op     string // operation, e.g. "aggregate"
	Field  string // request field at fault
	Detail string
	Err    error // one of the Err* validation sentinels
}

func (e *ValidationError) Error() string {
	msg := e.Op + ": " + e.Field + ": " + e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(op, field string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{Op: op, Field: field, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// ErrorKind classifies a driver fault.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindUniqueViolation
	KindValueTooLong
	KindNotNullViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindUniqueViolation:
		return "unique_violation"
	case KindValueTooLong:
		return "value_too_long"
	case KindNotNullViolation:
		return "not_null_violation"
	default:
		return "other"
	}
}

// DatabaseError wraps a fault reported by the database driver while
// executing SQL. Error() keeps the driver message verbatim.
type DatabaseError struct {
	Op   string
	SQL  string
	Kind ErrorKind
	Err  error
}

func (e *DatabaseError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// Is matches the fault category sentinels.
func (e *DatabaseError) Is(target error) bool {
	switch target {
	case ErrUniqueViolation:
		return e.Kind == KindUniqueViolation
	case ErrValueTooLong:
		return e.Kind == KindValueTooLong
	case ErrNotNullViolation:
		return e.Kind == KindNotNullViolation
	}
	return false
}
