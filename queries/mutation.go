package queries

import (
	"github.com/bawdo/sqlprobe/managers"
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// InsertRequest inserts one row. When Columns is empty the values are
// positional and must cover the table's columns in order.
type InsertRequest struct {
	Table   string
	Columns []string
	Values  []any
}

// DeleteRequest deletes rows matching conditions joined with one
// combinator. No conditions deletes every row.
type DeleteRequest struct {
	Table      string
	Conditions []Condition
	Combinator Combinator
}

// CompileInsert compiles INSERT INTO ... VALUES. A nil value renders as
// the NULL keyword and is never bound.
func CompileInsert(v nodes.Visitor, req InsertRequest, ts ...plugins.Transformer) (Statement, error) {
	const op = "insert"
	if req.Table == "" {
		return Statement{}, invalid(op, "table", ErrMissingArgument, "table is required")
	}
	if len(req.Values) == 0 {
		return Statement{}, invalid(op, "values", ErrMissingArgument, "at least one value is required")
	}
	if err := checkIdentifier(op, "table", req.Table); err != nil {
		return Statement{}, err
	}
	if len(req.Columns) > 0 && len(req.Columns) != len(req.Values) {
		return Statement{}, invalid(op, "values", ErrLengthMismatch,
			"%d columns, %d values", len(req.Columns), len(req.Values))
	}
	if err := checkIdentifiers(op, "columns", req.Columns); err != nil {
		return Statement{}, err
	}
	for _, val := range req.Values {
		if err := checkValue(op, "values", val); err != nil {
			return Statement{}, err
		}
	}

	table := nodes.NewTable(req.Table)
	m := managers.NewInsertManager(table).
		Columns(columnNodes(table, req.Columns)...).
		Values(req.Values...)
	for _, t := range ts {
		m.Use(t)
	}
	return generate(v, m)
}

// CompileDelete compiles DELETE FROM ... WHERE.
func CompileDelete(v nodes.Visitor, req DeleteRequest, ts ...plugins.Transformer) (Statement, error) {
	const op = "delete"
	if req.Table == "" {
		return Statement{}, invalid(op, "table", ErrMissingArgument, "table is required")
	}
	if err := checkIdentifier(op, "table", req.Table); err != nil {
		return Statement{}, err
	}
	table := nodes.NewTable(req.Table)
	where, err := compileConditions(op, table, req.Conditions, req.Combinator)
	if err != nil {
		return Statement{}, err
	}

	m := managers.NewDeleteManager(table).Where(where)
	for _, t := range ts {
		m.Use(t)
	}
	return generate(v, m)
}
