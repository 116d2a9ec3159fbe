package queries

import (
	"strings"

	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/visitors"
)

// Dialect selects the SQL generator.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

// ParseDialect maps an engine name to a Dialect. Matching is
// case-insensitive and accepts the common aliases.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", "postgres", "postgresql", "pg", "pgx":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return "", &ValidationError{Op: "dialect", Field: "name", Err: ErrUnknownDialect, Detail: name}
}

// Visitor returns a fresh visitor for the dialect. Visitors collect bind
// parameters and are not safe for concurrent use.
func (d Dialect) Visitor(opts ...visitors.Option) (nodes.Visitor, error) {
	switch d {
	case Postgres:
		return visitors.NewPostgresVisitor(opts...), nil
	case MySQL:
		return visitors.NewMySQLVisitor(opts...), nil
	case SQLite:
		return visitors.NewSQLiteVisitor(opts...), nil
	}
	return nil, &ValidationError{Op: "dialect", Field: "name", Err: ErrUnknownDialect, Detail: string(d)}
}
