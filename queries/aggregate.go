package queries

import (
	"log/slog"
	"strings"

	"github.com/bawdo/sqlprobe/managers"
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// AggregateRequest computes one aggregate over a table.
//
// Column may be empty only for COUNT, which then counts rows. Function
// wraps the column and is honoured for AVG only. Conditions are joined
// with AND.
type AggregateRequest struct {
	Table      string
	Operator   string
	Column     string
	Function   string
	Distinct   bool
	Conditions []Condition
}

// CompileAggregate compiles a scalar aggregate SELECT. The result column is
// named after the lower-cased operator, e.g. "count".
func CompileAggregate(v nodes.Visitor, req AggregateRequest, ts ...plugins.Transformer) (Statement, error) {
	return compileAggregate(v, req, nil, ts)
}

func compileAggregate(v nodes.Visitor, req AggregateRequest, logger *slog.Logger, ts []plugins.Transformer) (Statement, error) {
	agg, table, where, err := aggregateNodes(req, logger)
	if err != nil {
		return Statement{}, err
	}
	m := managers.NewSelectManager(table).
		Select(agg.As(strings.ToLower(agg.Func.String()))).
		Where(where)
	for _, t := range ts {
		m.Use(t)
	}
	return generate(v, m)
}

func aggregateNodes(req AggregateRequest, logger *slog.Logger) (*nodes.AggregateNode, *nodes.Table, nodes.Node, error) {
	const op = "aggregate"
	if err := checkIdentifier(op, "table", req.Table); err != nil {
		return nil, nil, nil, err
	}
	fn, ok := nodes.ParseAggregateFunc(req.Operator)
	if !ok {
		return nil, nil, nil, invalid(op, "operator", ErrInvalidOperator,
			"%q (want COUNT, SUM, AVG, MIN or MAX)", req.Operator)
	}
	if fn != nodes.AggCount && req.Column == "" {
		return nil, nil, nil, invalid(op, "column", ErrMissingColumn,
			"%s requires a column", fn)
	}

	table := nodes.NewTable(req.Table)
	var expr nodes.Node
	if req.Column != "" {
		if err := checkIdentifier(op, "column", req.Column); err != nil {
			return nil, nil, nil, err
		}
		expr = table.Col(req.Column)
	}
	if req.Function != "" {
		if err := checkIdentifier(op, "function", req.Function); err != nil {
			return nil, nil, nil, err
		}
		if fn == nodes.AggAvg && expr != nil {
			expr = nodes.NewNamedFunction(strings.ToUpper(req.Function), expr)
		} else if logger != nil {
			logger.Debug("wrapping function ignored", "op", op, "operator", fn.String(), "function", req.Function)
		}
	}

	agg := nodes.NewAggregateNode(fn, expr)
	agg.Distinct = req.Distinct && expr != nil

	where, err := compileConditions(op, table, req.Conditions, And)
	if err != nil {
		return nil, nil, nil, err
	}
	return agg, table, where, nil
}
