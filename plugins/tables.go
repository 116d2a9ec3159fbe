package plugins

import "github.com/bawdo/sqlprobe/nodes"

// TableRef holds a reference to a table relation and its underlying name.
// Relation is the node used to create column references and Name is the
// table name used for matching.
type TableRef struct {
	Relation nodes.Node
	Name     string
}

// InsertTarget returns the table an INSERT writes to.
func InsertTarget(stmt *nodes.InsertStatement) (TableRef, bool) {
	return extractTableRef(stmt.Into)
}

// DeleteTarget returns the table a DELETE removes rows from.
func DeleteTarget(stmt *nodes.DeleteStatement) (TableRef, bool) {
	return extractTableRef(stmt.From)
}

func extractTableRef(n nodes.Node) (TableRef, bool) {
	if r, ok := n.(*nodes.Table); ok {
		return TableRef{Relation: r, Name: r.Name}, true
	}
	return TableRef{}, false
}
