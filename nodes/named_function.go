package nodes

// NamedFunctionNode represents a named SQL function call like LOWER, LENGTH, etc.
type NamedFunctionNode struct {
	Predications
	Combinable
	Name string
	Args []Node
}

func (n *NamedFunctionNode) Accept(v Visitor) string { return v.VisitNamedFunction(n) }

// NewNamedFunction creates a NamedFunctionNode with properly initialised embedded structs.
func NewNamedFunction(name string, args ...Node) *NamedFunctionNode {
	n := &NamedFunctionNode{Name: name, Args: args}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

// Lower creates a LOWER(expr) function call.
func Lower(expr Node) *NamedFunctionNode {
	return NewNamedFunction("LOWER", expr)
}

// Upper creates an UPPER(expr) function call.
func Upper(expr Node) *NamedFunctionNode {
	return NewNamedFunction("UPPER", expr)
}

// Length creates a LENGTH(expr) function call.
func Length(expr Node) *NamedFunctionNode {
	return NewNamedFunction("LENGTH", expr)
}
