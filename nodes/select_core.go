package nodes

// SelectCore represents the data container for a SELECT statement.
// The fluent API for building queries lives in the managers package.
type SelectCore struct {
	From        Node
	Projections []Node
	Wheres      []Node
	Orders      []Node // OrderingNode values
	Limit       Node   // nil or LiteralNode
	Distinct    bool
}

func (n *SelectCore) Accept(v Visitor) string { return v.VisitSelectCore(n) }
