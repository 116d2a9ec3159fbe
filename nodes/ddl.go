package nodes

// CreateTableAsNode represents CREATE TABLE name AS <copy of source>.
// The copy carries rows and column types but no constraints or indexes.
type CreateTableAsNode struct {
	Name   *Table
	Source *Table
}

func (n *CreateTableAsNode) Accept(v Visitor) string { return v.VisitCreateTableAs(n) }

// DropTableNode represents DROP TABLE [IF EXISTS] name [CASCADE].
type DropTableNode struct {
	Table    *Table
	IfExists bool
	Cascade  bool
}

func (n *DropTableNode) Accept(v Visitor) string { return v.VisitDropTable(n) }
