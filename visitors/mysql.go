package visitors

import (
	"github.com/bawdo/sqlprobe/internal/quoting"
	"github.com/bawdo/sqlprobe/nodes"
)

// MySQLVisitor generates MySQL-dialect SQL.
// Identifiers are quoted with backticks: `table`.`column`.
type MySQLVisitor struct {
	*baseVisitor
}

// NewMySQLVisitor creates a MySQLVisitor ready for use.
// Parameterized mode (?) is on unless WithoutParams() is passed.
func NewMySQLVisitor(opts ...Option) *MySQLVisitor {
	v := &MySQLVisitor{}
	v.baseVisitor = newBaseVisitor(v, quoting.Backtick,
		func(_ int) string { return "?" }, opts)
	return v
}

// VisitCreateTableAs renders the copy as a SELECT, which every MySQL
// version accepts.
func (v *MySQLVisitor) VisitCreateTableAs(n *nodes.CreateTableAsNode) string {
	return "CREATE TABLE " + n.Name.Accept(v) + " AS SELECT * FROM " + n.Source.Accept(v)
}
