package queries

import (
	"strings"

	"github.com/bawdo/sqlprobe/managers"
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// OrderedSelectRequest selects columns (all when empty) ordered by one
// column, optionally wrapped in Function. Direction is ASC or DESC and
// defaults to ASC. Limit applies only when OrderBy is set; zero means no
// limit.
type OrderedSelectRequest struct {
	Table     string
	Columns   []string
	OrderBy   string
	Function  string
	Direction string
	Limit     int
}

// CompileOrderedSelect compiles SELECT ... ORDER BY ... LIMIT.
func CompileOrderedSelect(v nodes.Visitor, req OrderedSelectRequest, ts ...plugins.Transformer) (Statement, error) {
	const op = "select_ordered"
	if err := checkIdentifier(op, "table", req.Table); err != nil {
		return Statement{}, err
	}
	if err := checkIdentifiers(op, "columns", req.Columns); err != nil {
		return Statement{}, err
	}
	dir, ok := nodes.ParseOrderDirection(req.Direction)
	if !ok {
		return Statement{}, invalid(op, "direction", ErrInvalidDirection,
			"%q (want ASC or DESC)", req.Direction)
	}
	if req.Limit < 0 {
		return Statement{}, invalid(op, "limit", ErrInvalidLimit, "%d", req.Limit)
	}

	table := nodes.NewTable(req.Table)
	m := managers.NewSelectManager(table).Select(columnNodes(table, req.Columns)...)

	if req.OrderBy != "" {
		if err := checkIdentifier(op, "order_by", req.OrderBy); err != nil {
			return Statement{}, err
		}
		var key nodes.Node = table.Col(req.OrderBy)
		if req.Function != "" {
			if err := checkIdentifier(op, "function", req.Function); err != nil {
				return Statement{}, err
			}
			key = nodes.NewNamedFunction(strings.ToUpper(req.Function), key)
		}
		m.Order(&nodes.OrderingNode{Expr: key, Direction: dir})
		if req.Limit > 0 {
			m.Limit(req.Limit)
		}
	}

	for _, t := range ts {
		m.Use(t)
	}
	return generate(v, m)
}
