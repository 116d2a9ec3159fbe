package managers

import (
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// InsertManager provides a fluent API for building INSERT statements.
type InsertManager struct {
	treeManager
	Statement *nodes.InsertStatement
}

// NewInsertManager creates a new InsertManager targeting the given table.
func NewInsertManager(into nodes.Node) *InsertManager {
	return &InsertManager{
		Statement: &nodes.InsertStatement{Into: into},
	}
}

// Columns sets the column list for the INSERT statement.
func (m *InsertManager) Columns(cols ...nodes.Node) *InsertManager {
	m.Statement.Columns = cols
	return m
}

// Values appends a row of values to the INSERT statement.
// Each call to Values adds one row. Pass raw Go values; they are
// wrapped with nodes.Literal automatically.
func (m *InsertManager) Values(vals ...any) *InsertManager {
	row := make([]nodes.Node, len(vals))
	for i, v := range vals {
		row[i] = nodes.Literal(v)
	}
	m.Statement.Values = append(m.Statement.Values, row)
	return m
}

// Use registers a transformer plugin.
func (m *InsertManager) Use(t plugins.Transformer) *InsertManager {
	m.addTransformer(t)
	return m
}

func (m *InsertManager) toSQLCore(v nodes.Visitor) (string, error) {
	stmt := m.cloneStatement()
	for _, t := range m.transformers {
		var err error
		stmt, err = t.TransformInsert(stmt)
		if err != nil {
			return "", err
		}
	}
	return stmt.Accept(v), nil
}

// ToSQL applies transformers and generates SQL with parameters.
func (m *InsertManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}

func (m *InsertManager) cloneStatement() *nodes.InsertStatement {
	columns := make([]nodes.Node, len(m.Statement.Columns))
	copy(columns, m.Statement.Columns)

	values := make([][]nodes.Node, len(m.Statement.Values))
	for i, row := range m.Statement.Values {
		r := make([]nodes.Node, len(row))
		copy(r, row)
		values[i] = r
	}

	return &nodes.InsertStatement{
		Into:    m.Statement.Into,
		Columns: columns,
		Values:  values,
	}
}
