package queries

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// tablesSQL lists user tables per dialect, sorted, in a column named "name".
var tablesSQL = map[Dialect]string{
	Postgres: "SELECT table_name AS name FROM information_schema.tables WHERE table_schema = current_schema() ORDER BY table_name",
	MySQL:    "SELECT table_name AS name FROM information_schema.tables WHERE table_schema = DATABASE() ORDER BY table_name",
	SQLite:   "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name",
}

// Tables lists the user tables visible to the connection, sorted by name.
func (q *Queries) Tables(ctx context.Context) ([]string, error) {
	query, ok := tablesSQL[q.dialect]
	if !ok {
		return nil, &ValidationError{Op: "tables", Field: "dialect", Err: ErrUnknownDialect, Detail: string(q.dialect)}
	}
	rows, err := q.query(ctx, "tables", Statement{SQL: query})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, fmt.Sprint(r["name"]))
	}
	return names, nil
}

// HasTable reports whether table exists. Names compare case-insensitively.
func (q *Queries) HasTable(ctx context.Context, table string) (bool, error) {
	names, err := q.Tables(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(names, func(n string) bool {
		return strings.EqualFold(n, table)
	}), nil
}
