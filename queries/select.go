package queries

import (
	"github.com/bawdo/sqlprobe/managers"
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// SelectRequest selects columns (all when empty) from a table, filtered by
// conditions joined with one combinator.
type SelectRequest struct {
	Table      string
	Columns    []string
	Conditions []Condition
	Combinator Combinator
}

// CompileSelect compiles a filtered SELECT.
func CompileSelect(v nodes.Visitor, req SelectRequest, ts ...plugins.Transformer) (Statement, error) {
	const op = "select"
	if err := checkIdentifier(op, "table", req.Table); err != nil {
		return Statement{}, err
	}
	if err := checkIdentifiers(op, "columns", req.Columns); err != nil {
		return Statement{}, err
	}
	table := nodes.NewTable(req.Table)
	where, err := compileConditions(op, table, req.Conditions, req.Combinator)
	if err != nil {
		return Statement{}, err
	}

	m := managers.NewSelectManager(table).
		Select(columnNodes(table, req.Columns)...).
		Where(where)
	for _, t := range ts {
		m.Use(t)
	}
	return generate(v, m)
}
