package visitors

import (
	"fmt"
	"strings"

	"github.com/bawdo/sqlprobe/internal/quoting"
)

// PostgresVisitor generates PostgreSQL-dialect SQL.
// Identifiers are quoted with double quotes: "table"."column".
//
// Identifiers are folded to lower case before quoting, so Actor and actor
// name the same relation, as they would unquoted.
type PostgresVisitor struct {
	*baseVisitor
}

// NewPostgresVisitor creates a PostgresVisitor ready for use.
// Parameterized mode ($1, $2, ...) is on unless WithoutParams() is passed.
func NewPostgresVisitor(opts ...Option) *PostgresVisitor {
	v := &PostgresVisitor{}
	v.baseVisitor = newBaseVisitor(v, quotePostgres,
		func(i int) string { return fmt.Sprintf("$%d", i) }, opts)
	return v
}

func quotePostgres(s string) string {
	return quoting.DoubleQuote(strings.ToLower(s))
}
