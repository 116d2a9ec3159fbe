package nodes

// Predications provides comparison methods to types that embed it.
// The self field must be set to the embedding node so that comparisons
// reference the correct left-hand side.
type Predications struct {
	self Node
}

// Eq creates an equality comparison: self = val.
func (p Predications) Eq(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpEq)
}

// Gt creates a greater-than comparison: self > val.
func (p Predications) Gt(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpGt)
}

// Lt creates a less-than comparison: self < val.
func (p Predications) Lt(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpLt)
}

// Like creates a LIKE comparison: self LIKE val.
func (p Predications) Like(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpLike)
}

// IsNull creates an IS NULL predicate.
func (p Predications) IsNull() *UnaryNode {
	n := &UnaryNode{Expr: p.self, Op: OpIsNull}
	n.self = n
	return n
}

// IsNotNull creates an IS NOT NULL predicate.
func (p Predications) IsNotNull() *UnaryNode {
	n := &UnaryNode{Expr: p.self, Op: OpIsNotNull}
	n.self = n
	return n
}

// As creates an AliasNode wrapping self with the given alias name.
func (p Predications) As(name string) *AliasNode {
	return NewAliasNode(p.self, name)
}

// Asc creates an ascending ordering node.
func (p Predications) Asc() *OrderingNode {
	return &OrderingNode{Expr: p.self, Direction: Asc}
}

// Desc creates a descending ordering node.
func (p Predications) Desc() *OrderingNode {
	return &OrderingNode{Expr: p.self, Direction: Desc}
}
