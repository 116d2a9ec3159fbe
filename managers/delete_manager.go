package managers

import (
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// DeleteManager provides a fluent API for building DELETE statements.
type DeleteManager struct {
	treeManager
	Statement *nodes.DeleteStatement
}

// NewDeleteManager creates a new DeleteManager targeting the given table.
func NewDeleteManager(from nodes.Node) *DeleteManager {
	return &DeleteManager{
		Statement: &nodes.DeleteStatement{From: from},
	}
}

// Where appends conditions to the WHERE clause. Nil conditions are skipped.
func (m *DeleteManager) Where(conditions ...nodes.Node) *DeleteManager {
	for _, c := range conditions {
		if c != nil {
			m.Statement.Wheres = append(m.Statement.Wheres, c)
		}
	}
	return m
}

// Use registers a transformer plugin.
func (m *DeleteManager) Use(t plugins.Transformer) *DeleteManager {
	m.addTransformer(t)
	return m
}

func (m *DeleteManager) toSQLCore(v nodes.Visitor) (string, error) {
	stmt := m.cloneStatement()
	for _, t := range m.transformers {
		var err error
		stmt, err = t.TransformDelete(stmt)
		if err != nil {
			return "", err
		}
	}
	return stmt.Accept(v), nil
}

// ToSQL applies transformers and generates SQL with parameters.
func (m *DeleteManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}

func (m *DeleteManager) cloneStatement() *nodes.DeleteStatement {
	wheres := make([]nodes.Node, len(m.Statement.Wheres))
	copy(wheres, m.Statement.Wheres)

	return &nodes.DeleteStatement{
		From:   m.Statement.From,
		Wheres: wheres,
	}
}
