package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Querier executes SQL. *sql.DB, *sql.Conn and *sql.Tx satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Conn)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// query runs st and scans every row.
func (q *Queries) query(ctx context.Context, op string, st Statement) (Rows, error) {
	q.logStatement(ctx, op, st)
	rows, err := q.db.QueryContext(ctx, st.SQL, st.Params...)
	if err != nil {
		return nil, q.fail(ctx, op, st, err)
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		return nil, q.fail(ctx, op, st, err)
	}
	return out, nil
}

// exec runs st and reports the affected row count. Drivers that cannot
// report it (DDL on some engines) yield zero.
func (q *Queries) exec(ctx context.Context, op string, st Statement) (CommandResult, error) {
	q.logStatement(ctx, op, st)
	res, err := q.db.ExecContext(ctx, st.SQL, st.Params...)
	if err != nil {
		return CommandResult{}, q.fail(ctx, op, st, err)
	}
	// Some drivers cannot count rows for DDL; the statement still succeeded.
	n, err := res.RowsAffected()
	if err != nil {
		q.logger.DebugContext(ctx, "rows affected unavailable", "op", op, "error", err)
		n = 0
	}
	return CommandResult{RowsAffected: n}, nil
}

func (q *Queries) logStatement(ctx context.Context, op string, st Statement) {
	q.logger.DebugContext(ctx, "executing statement", "op", op, "sql", st.SQL, "params", len(st.Params))
}

func (q *Queries) fail(ctx context.Context, op string, st Statement, err error) error {
	dbErr := &DatabaseError{Op: op, SQL: st.SQL, Kind: classify(err), Err: err}
	q.logger.ErrorContext(ctx, "statement failed", "op", op, "sql", st.SQL, "kind", dbErr.Kind.String(), "error", err)
	return dbErr
}

func scanRows(rows *sql.Rows) (Rows, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := Rows{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[c] = string(b)
				continue
			}
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation  = "23505"
	pgStringTooLong    = "22001"
	pgNotNullViolation = "23502"
)

// MySQL server error numbers.
const (
	myDupEntry     = 1062
	myDataTooLong  = 1406
	myBadNullError = 1048
)

// classify maps a driver error to an ErrorKind. Unknown driver errors
// fall back to matching the message text.
func classify(err error) ErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindUniqueViolation
		case pgStringTooLong:
			return KindValueTooLong
		case pgNotNullViolation:
			return KindNotNullViolation
		}
		return KindOther
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case myDupEntry:
			return KindUniqueViolation
		case myDataTooLong:
			return KindValueTooLong
		case myBadNullError:
			return KindNotNullViolation
		}
		return KindOther
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return KindUniqueViolation
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return KindNotNullViolation
		}
	}

	return classifyMessage(err.Error())
}

func classifyMessage(msg string) ErrorKind {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "duplicate entry"),
		strings.Contains(msg, "unique constraint"):
		return KindUniqueViolation
	case strings.Contains(msg, "value too long"),
		strings.Contains(msg, "data too long"):
		return KindValueTooLong
	case strings.Contains(msg, "not-null constraint"),
		strings.Contains(msg, "not null constraint"),
		strings.Contains(msg, "cannot be null"):
		return KindNotNullViolation
	}
	return KindOther
}
