package nodes

// AndNode represents a logical AND between two expressions.
type AndNode struct {
	Combinable
	Left  Node
	Right Node
}

func (n *AndNode) Accept(v Visitor) string { return v.VisitAnd(n) }

// OrNode represents a logical OR between two expressions.
type OrNode struct {
	Combinable
	Left  Node
	Right Node
}

func (n *OrNode) Accept(v Visitor) string { return v.VisitOr(n) }

// ChainAnd chains nds left to right with AND.
// Returns nil if nds is empty and the sole node when there is only one.
func ChainAnd(nds ...Node) Node {
	if len(nds) == 0 {
		return nil
	}
	result := nds[0]
	for _, n := range nds[1:] {
		and := &AndNode{Left: result, Right: n}
		and.self = and
		result = and
	}
	return result
}

// ChainOr chains nds left to right with OR and wraps the chain in a
// GroupingNode so it composes with sibling AND predicates.
// Returns nil if nds is empty; a single node is returned unwrapped.
func ChainOr(nds ...Node) Node {
	if len(nds) == 0 {
		return nil
	}
	if len(nds) == 1 {
		return nds[0]
	}
	result := nds[0]
	for _, n := range nds[1:] {
		or := &OrNode{Left: result, Right: n}
		or.self = or
		result = or
	}
	g := &GroupingNode{Expr: result}
	g.self = g
	return g
}
