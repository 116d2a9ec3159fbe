package nodes

// AliasNode represents a column or expression alias: expr AS "name".
type AliasNode struct {
	Expr Node
	Name string
}

func (n *AliasNode) Accept(v Visitor) string { return v.VisitAlias(n) }

// NewAliasNode creates an AliasNode.
func NewAliasNode(expr Node, name string) *AliasNode {
	return &AliasNode{Expr: expr, Name: name}
}
