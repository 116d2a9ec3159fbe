// Package nodes defines the AST node types used to represent SQL statements
// produced by the query compilers.
package nodes

// Node is the interface that all AST nodes implement.
type Node interface {
	Accept(visitor Visitor) string
}

// Visitor defines the interface for walking the AST and producing output.
// Concrete visitors (Postgres, MySQL, SQLite) implement this interface.
type Visitor interface {
	VisitTable(node *Table) string
	VisitAttribute(node *Attribute) string
	VisitLiteral(node *LiteralNode) string
	VisitStar(node *StarNode) string
	VisitComparison(node *ComparisonNode) string
	VisitUnary(node *UnaryNode) string
	VisitAnd(node *AndNode) string
	VisitOr(node *OrNode) string
	VisitGrouping(node *GroupingNode) string
	VisitOrdering(node *OrderingNode) string
	VisitSelectCore(node *SelectCore) string
	VisitInsertStatement(node *InsertStatement) string
	VisitDeleteStatement(node *DeleteStatement) string
	VisitAggregate(node *AggregateNode) string
	VisitNamedFunction(node *NamedFunctionNode) string
	VisitAlias(node *AliasNode) string
	VisitCreateTableAs(node *CreateTableAsNode) string
	VisitDropTable(node *DropTableNode) string
}

// Parameterizer is implemented by visitors that support parameterized queries.
// Callers use type assertion to extract collected parameters after SQL generation.
type Parameterizer interface {
	Params() []any
	Reset()
}

// Literal wraps a raw Go value into a LiteralNode. If val already
// implements Node, it is returned as-is.
func Literal(val any) Node {
	if n, ok := val.(Node); ok {
		return n
	}
	lit := &LiteralNode{Value: val}
	lit.Predications.self = lit
	lit.Combinable.self = lit
	return lit
}

// InsertStatement represents INSERT INTO ... [(cols)] VALUES (...).
type InsertStatement struct {
	Into    Node     // *Table
	Columns []Node   // column list, empty for positional inserts
	Values  [][]Node // rows of values (multi-row)
}

func (n *InsertStatement) Accept(v Visitor) string { return v.VisitInsertStatement(n) }

// DeleteStatement represents DELETE FROM ... WHERE.
type DeleteStatement struct {
	From   Node
	Wheres []Node
}

func (n *DeleteStatement) Accept(v Visitor) string { return v.VisitDeleteStatement(n) }
