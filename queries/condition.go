package queries

import (
	"strings"

	"github.com/bawdo/sqlprobe/internal/quoting"
	"github.com/bawdo/sqlprobe/nodes"
)

// NotNull is the sentinel value that compiles a condition to IS NOT NULL.
const NotNull = "NOT NULL"

// Condition filters on one column. The value selects the operator:
//
//	nil           column IS NULL
//	NotNull       column IS NOT NULL
//	">x" string   column > 'x'
//	"<x" string   column < 'x'
//	other         column = value
//
// Only the first character of a ">" or "<" prefix is consumed, so ">>x"
// compares against ">x".
type Condition struct {
	Column string
	Value  any
}

// Pairs zips parallel column and value lists into conditions.
func Pairs(columns []string, values []any) ([]Condition, error) {
	if len(columns) != len(values) {
		return nil, invalid("pairs", "values", ErrLengthMismatch,
			"%d columns, %d values", len(columns), len(values))
	}
	conds := make([]Condition, len(columns))
	for i, c := range columns {
		conds[i] = Condition{Column: c, Value: values[i]}
	}
	return conds, nil
}

// Combinator joins every condition of one request.
type Combinator string

const (
	And Combinator = "AND"
	Or  Combinator = "OR"
)

func parseCombinator(op string, c Combinator) (Combinator, error) {
	switch Combinator(strings.ToUpper(string(c))) {
	case "", And:
		return And, nil
	case Or:
		return Or, nil
	}
	return "", invalid(op, "combinator", ErrInvalidCombinator, "%q (want AND or OR)", string(c))
}

// compileConditions renders conditions against table and joins them with
// the combinator. An OR chain is grouped in parentheses. It returns nil
// when conds is empty.
func compileConditions(op string, table *nodes.Table, conds []Condition, comb Combinator) (nodes.Node, error) {
	comb, err := parseCombinator(op, comb)
	if err != nil {
		return nil, err
	}
	preds := make([]nodes.Node, 0, len(conds))
	for _, c := range conds {
		p, err := compileCondition(op, table, c)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	if comb == Or {
		return nodes.ChainOr(preds...), nil
	}
	return nodes.ChainAnd(preds...), nil
}

func compileCondition(op string, table *nodes.Table, c Condition) (nodes.Node, error) {
	if err := checkIdentifier(op, "column", c.Column); err != nil {
		return nil, err
	}
	col := table.Col(c.Column)

	switch v := c.Value.(type) {
	case nil:
		return col.IsNull(), nil
	case string:
		switch {
		case v == NotNull:
			return col.IsNotNull(), nil
		case strings.HasPrefix(v, ">"):
			return col.Gt(v[1:]), nil
		case strings.HasPrefix(v, "<"):
			return col.Lt(v[1:]), nil
		}
		return col.Eq(v), nil
	}
	if err := checkValue(op, "value", c.Value); err != nil {
		return nil, err
	}
	return col.Eq(c.Value), nil
}

func checkIdentifier(op, field, name string) error {
	if name == "" {
		return invalid(op, field, ErrInvalidIdentifier, "empty name")
	}
	if !quoting.ValidIdentifier(name) {
		return invalid(op, field, ErrInvalidIdentifier, "%q", name)
	}
	return nil
}

func checkIdentifiers(op, field string, names []string) error {
	for _, n := range names {
		if err := checkIdentifier(op, field, n); err != nil {
			return err
		}
	}
	return nil
}

// checkValue accepts nil, strings, bools and the Go integer and float kinds.
func checkValue(op, field string, v any) error {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	}
	return invalid(op, field, ErrUnsupportedValue, "%T", v)
}

func columnNodes(table *nodes.Table, names []string) []nodes.Node {
	if len(names) == 0 {
		return nil
	}
	out := make([]nodes.Node, len(names))
	for i, n := range names {
		out[i] = table.Col(n)
	}
	return out
}
