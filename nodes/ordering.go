package nodes

import "strings"

// OrderDirection represents ASC or DESC ordering.
type OrderDirection int

const (
	Asc OrderDirection = iota
	Desc
)

// ParseOrderDirection maps "ASC"/"DESC" (any case) to an OrderDirection.
// An empty string means Asc. The second result is false for anything else.
func ParseOrderDirection(s string) (OrderDirection, bool) {
	switch strings.ToUpper(s) {
	case "", "ASC":
		return Asc, true
	case "DESC":
		return Desc, true
	default:
		return Asc, false
	}
}

// OrderingNode represents an ORDER BY expression with a direction.
type OrderingNode struct {
	Expr      Node
	Direction OrderDirection
}

func (n *OrderingNode) Accept(v Visitor) string { return v.VisitOrdering(n) }
