package queries

import (
	"github.com/bawdo/sqlprobe/managers"
	"github.com/bawdo/sqlprobe/nodes"
)

// Statement is compiled SQL plus its bind parameters in placeholder order.
type Statement struct {
	SQL    string
	Params []any
}

// Row is one result row keyed by column name.
type Row map[string]any

// Rows is a query result. It is empty, never nil, when nothing matched.
type Rows []Row

// CommandResult is the outcome of an INSERT, DELETE or DDL statement.
type CommandResult struct {
	RowsAffected int64
}

type sqlGenerator interface {
	ToSQL(v nodes.Visitor) (string, []any, error)
}

var (
	_ sqlGenerator = (*managers.SelectManager)(nil)
	_ sqlGenerator = (*managers.InsertManager)(nil)
	_ sqlGenerator = (*managers.DeleteManager)(nil)
)

func generate(v nodes.Visitor, m sqlGenerator) (Statement, error) {
	sql, params, err := m.ToSQL(v)
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sql, Params: params}, nil
}
