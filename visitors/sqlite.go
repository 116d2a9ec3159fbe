package visitors

import (
	"github.com/bawdo/sqlprobe/internal/quoting"
	"github.com/bawdo/sqlprobe/nodes"
)

// SQLiteVisitor generates SQLite-dialect SQL.
// Identifiers are quoted with double quotes: "table"."column" (ANSI SQL).
type SQLiteVisitor struct {
	*baseVisitor
}

// NewSQLiteVisitor creates a SQLiteVisitor ready for use.
// Parameterized mode (?) is on unless WithoutParams() is passed.
func NewSQLiteVisitor(opts ...Option) *SQLiteVisitor {
	v := &SQLiteVisitor{}
	v.baseVisitor = newBaseVisitor(v, quoting.DoubleQuote,
		func(_ int) string { return "?" }, opts)
	return v
}

// VisitCreateTableAs renders the copy as a SELECT; SQLite has no
// "AS TABLE" shorthand.
func (v *SQLiteVisitor) VisitCreateTableAs(n *nodes.CreateTableAsNode) string {
	return "CREATE TABLE " + n.Name.Accept(v) + " AS SELECT * FROM " + n.Source.Accept(v)
}

// VisitDropTable drops the CASCADE keyword, which SQLite does not parse.
func (v *SQLiteVisitor) VisitDropTable(n *nodes.DropTableNode) string {
	drop := *n
	drop.Cascade = false
	return v.baseVisitor.VisitDropTable(&drop)
}
