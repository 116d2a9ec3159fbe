// Package managers provides high-level fluent APIs for building SQL ASTs.
package managers

import (
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// SelectManager provides a fluent API for building SELECT queries.
// It wraps a SelectCore and applies transformer plugins before SQL generation.
type SelectManager struct {
	treeManager
	Core *nodes.SelectCore
}

// NewSelectManager creates a new SelectManager with the given table as FROM.
func NewSelectManager(from nodes.Node) *SelectManager {
	return &SelectManager{
		Core: &nodes.SelectCore{From: from},
	}
}

// Select sets the projection list, replacing any existing projections.
// An empty projection list renders as *.
func (m *SelectManager) Select(projections ...nodes.Node) *SelectManager {
	m.Core.Projections = projections
	return m
}

// Distinct enables or disables the DISTINCT modifier on the SELECT clause.
func (m *SelectManager) Distinct(on ...bool) *SelectManager {
	m.Core.Distinct = len(on) == 0 || on[0]
	return m
}

// Where appends one or more conditions to the WHERE clause.
// Nil conditions are skipped. Multiple conditions are combined with AND.
func (m *SelectManager) Where(conditions ...nodes.Node) *SelectManager {
	for _, c := range conditions {
		if c != nil {
			m.Core.Wheres = append(m.Core.Wheres, c)
		}
	}
	return m
}

// Order appends one or more orderings to the ORDER BY clause.
func (m *SelectManager) Order(orderings ...nodes.Node) *SelectManager {
	m.Core.Orders = append(m.Core.Orders, orderings...)
	return m
}

// Limit sets the LIMIT clause.
func (m *SelectManager) Limit(n int) *SelectManager {
	m.Core.Limit = nodes.Literal(n)
	return m
}

// Use registers a transformer plugin.
func (m *SelectManager) Use(t plugins.Transformer) *SelectManager {
	m.addTransformer(t)
	return m
}

func (m *SelectManager) toSQLCore(v nodes.Visitor) (string, error) {
	core := m.CloneCore()
	for _, t := range m.transformers {
		var err error
		core, err = t.TransformSelect(core)
		if err != nil {
			return "", err
		}
	}
	return core.Accept(v), nil
}

// ToSQL applies all registered transformers and generates SQL with parameters.
// Parameters are collected when the visitor has parameterisation enabled.
func (m *SelectManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}

// CloneCore returns a shallow copy of the SelectCore so transformers
// don't modify the original.
func (m *SelectManager) CloneCore() *nodes.SelectCore {
	projections := make([]nodes.Node, len(m.Core.Projections))
	copy(projections, m.Core.Projections)

	wheres := make([]nodes.Node, len(m.Core.Wheres))
	copy(wheres, m.Core.Wheres)

	orders := make([]nodes.Node, len(m.Core.Orders))
	copy(orders, m.Core.Orders)

	return &nodes.SelectCore{
		From:        m.Core.From,
		Projections: projections,
		Wheres:      wheres,
		Orders:      orders,
		Limit:       m.Core.Limit,
		Distinct:    m.Core.Distinct,
	}
}
