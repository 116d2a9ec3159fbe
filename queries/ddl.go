package queries

import (
	"github.com/bawdo/sqlprobe/managers"
	"github.com/bawdo/sqlprobe/nodes"
)

// CloneSuffix is appended to a table name to name its clone.
const CloneSuffix = "_clone"

// CloneName returns the name CloneTable gives the copy of table.
func CloneName(table string) string {
	return table + CloneSuffix
}

// CompileClone compiles CREATE TABLE <table>_clone AS a copy of table.
// The copy has the rows and column types but no constraints.
func CompileClone(v nodes.Visitor, table string) (Statement, error) {
	const op = "clone_table"
	if err := checkIdentifier(op, "table", table); err != nil {
		return Statement{}, err
	}
	clone := CloneName(table)
	if err := checkIdentifier(op, "table", clone); err != nil {
		return Statement{}, err
	}
	return Statement{SQL: managers.CreateTableAs(clone, table).Accept(v)}, nil
}

// CompileDrop compiles DROP TABLE IF EXISTS table CASCADE.
func CompileDrop(v nodes.Visitor, table string) (Statement, error) {
	const op = "drop_table"
	if err := checkIdentifier(op, "table", table); err != nil {
		return Statement{}, err
	}
	return Statement{SQL: managers.DropTable(table).Accept(v)}, nil
}
