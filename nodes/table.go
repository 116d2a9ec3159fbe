package nodes

// Table represents a SQL table reference.
type Table struct {
	Name string
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (t *Table) Accept(v Visitor) string { return v.VisitTable(t) }

// Col creates an Attribute (column reference) bound to this table.
func (t *Table) Col(name string) *Attribute {
	return NewAttribute(t, name)
}

// Star creates a qualified star (table.*) for this table.
func (t *Table) Star() *StarNode {
	return &StarNode{Table: t}
}

// TableName returns the table name of a relation node, or "" when n is
// not a *Table.
func TableName(n Node) string {
	if t, ok := n.(*Table); ok {
		return t.Name
	}
	return ""
}
