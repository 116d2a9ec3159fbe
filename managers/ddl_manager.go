package managers

import "github.com/bawdo/sqlprobe/nodes"

// CreateTableAs builds CREATE TABLE name AS a copy of source. DDL carries
// no bind parameters and bypasses the transformer pipeline.
func CreateTableAs(name, source string) *nodes.CreateTableAsNode {
	return &nodes.CreateTableAsNode{
		Name:   nodes.NewTable(name),
		Source: nodes.NewTable(source),
	}
}

// DropTable builds DROP TABLE IF EXISTS name CASCADE. Dialects that do not
// support CASCADE omit it.
func DropTable(name string) *nodes.DropTableNode {
	return &nodes.DropTableNode{
		Table:    nodes.NewTable(name),
		IfExists: true,
		Cascade:  true,
	}
}
