// Package visitors provides SQL dialect generators that walk the AST.
package visitors

import (
	"fmt"
	"strings"

	"github.com/bawdo/sqlprobe/internal/quoting"
	"github.com/bawdo/sqlprobe/nodes"
)

// Operator SQL strings for ComparisonOp values.
var comparisonOpSQL = [...]string{
	nodes.OpEq:   "=",
	nodes.OpGt:   ">",
	nodes.OpLt:   "<",
	nodes.OpLike: "LIKE",
}

// Option configures a visitor at construction time.
type Option func(*baseVisitor)

// WithoutParams disables parameterized query mode.
//
// When disabled, literal values are interpolated directly into the SQL string
// with basic escaping only: strings are single-quoted, numbers and booleans
// are rendered bare and nil renders as NULL. This is meant for logging and
// inspecting compiled statements, never for executing untrusted input.
func WithoutParams() Option {
	return func(b *baseVisitor) {
		b.parameterize = false
	}
}

// baseVisitor implements the shared SQL generation logic used by all dialects.
// Dialect-specific visitors embed *baseVisitor and set the outer field to
// themselves, enabling correct virtual dispatch through the Visitor interface.
type baseVisitor struct {
	// outer is the concrete dialect visitor. All recursive Accept calls
	// go through outer so that dialect overrides are respected.
	outer nodes.Visitor

	// quoteIdent quotes a SQL identifier (table name, column name).
	quoteIdent func(string) string

	// parameterize enables bind-parameter mode.
	parameterize bool

	// params accumulates bind parameter values during SQL generation.
	params []any

	// paramIndex tracks the next parameter number (1-based).
	paramIndex int

	// placeholder returns the bind placeholder for a given parameter index.
	// PostgreSQL uses $1, $2; MySQL/SQLite use ?.
	placeholder func(int) string
}

func newBaseVisitor(outer nodes.Visitor, quoteIdent func(string) string, placeholder func(int) string, opts []Option) *baseVisitor {
	b := &baseVisitor{
		outer:        outer,
		quoteIdent:   quoteIdent,
		placeholder:  placeholder,
		parameterize: true,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Params returns the collected bind parameters from the last SQL generation.
func (b *baseVisitor) Params() []any {
	return b.params
}

// Reset clears collected parameters for reuse.
func (b *baseVisitor) Reset() {
	b.params = nil
	b.paramIndex = 0
}

// Parameterized reports whether literal values are emitted as placeholders.
func (b *baseVisitor) Parameterized() bool {
	return b.parameterize
}

func (b *baseVisitor) VisitTable(n *nodes.Table) string {
	return b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitAttribute(n *nodes.Attribute) string {
	if name := nodes.TableName(n.Relation); name != "" {
		return b.quoteIdent(name) + "." + b.quoteIdent(n.Name)
	}
	return b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitLiteral(n *nodes.LiteralNode) string {
	return b.literalToSQL(n.Value)
}

func (b *baseVisitor) literalToSQL(val any) string {
	// nil always renders as NULL keyword, never parameterized.
	if val == nil {
		return "NULL"
	}

	if b.parameterize {
		b.paramIndex++
		b.params = append(b.params, val)
		return b.placeholder(b.paramIndex)
	}

	switch v := val.(type) {
	case string:
		return "'" + quoting.EscapeString(v) + "'"
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%g", v)
	default:
		panic(fmt.Sprintf("sqlprobe: unsupported literal type %T", v))
	}
}

func (b *baseVisitor) VisitStar(n *nodes.StarNode) string {
	if n.Table != nil {
		return b.quoteIdent(n.Table.Name) + ".*"
	}
	return "*"
}

func (b *baseVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " " + comparisonOpSQL[n.Op] + " " + right
}

func (b *baseVisitor) VisitUnary(n *nodes.UnaryNode) string {
	expr := n.Expr.Accept(b.outer)
	switch n.Op {
	case nodes.OpIsNull:
		return expr + " IS NULL"
	case nodes.OpIsNotNull:
		return expr + " IS NOT NULL"
	default:
		return expr
	}
}

func (b *baseVisitor) VisitAnd(n *nodes.AndNode) string {
	return n.Left.Accept(b.outer) + " AND " + n.Right.Accept(b.outer)
}

func (b *baseVisitor) VisitOr(n *nodes.OrNode) string {
	return n.Left.Accept(b.outer) + " OR " + n.Right.Accept(b.outer)
}

func (b *baseVisitor) VisitGrouping(n *nodes.GroupingNode) string {
	return "(" + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitOrdering(n *nodes.OrderingNode) string {
	expr := n.Expr.Accept(b.outer)
	if n.Direction == nodes.Desc {
		return expr + " DESC"
	}
	return expr + " ASC"
}

func (b *baseVisitor) VisitInsertStatement(n *nodes.InsertStatement) string {
	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(n.Into.Accept(b.outer))

	if len(n.Columns) > 0 {
		sb.WriteString(" (")
		cols := make([]string, len(n.Columns))
		for i, c := range n.Columns {
			cols[i] = b.quoteIdent(c.(*nodes.Attribute).Name)
		}
		sb.WriteString(strings.Join(cols, ", "))
		sb.WriteString(")")
	}

	if len(n.Values) > 0 {
		sb.WriteString(" VALUES ")
		rows := make([]string, len(n.Values))
		for i, row := range n.Values {
			vals := make([]string, len(row))
			for j, v := range row {
				vals[j] = v.Accept(b.outer)
			}
			rows[i] = "(" + strings.Join(vals, ", ") + ")"
		}
		sb.WriteString(strings.Join(rows, ", "))
	}

	return sb.String()
}

func (b *baseVisitor) VisitDeleteStatement(n *nodes.DeleteStatement) string {
	var sb strings.Builder

	sb.WriteString("DELETE FROM ")
	sb.WriteString(n.From.Accept(b.outer))
	b.writeClause(&sb, " WHERE ", n.Wheres, " AND ")

	return sb.String()
}

func (b *baseVisitor) VisitAggregate(n *nodes.AggregateNode) string {
	var sb strings.Builder
	sb.WriteString(n.Func.String())
	sb.WriteString("(")
	if n.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if n.Expr == nil {
		sb.WriteString("*")
	} else {
		sb.WriteString(n.Expr.Accept(b.outer))
	}
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitNamedFunction(n *nodes.NamedFunctionNode) string {
	validateSQLFunctionName(n.Name)
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.Accept(b.outer)
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func (b *baseVisitor) VisitAlias(n *nodes.AliasNode) string {
	return n.Expr.Accept(b.outer) + " AS " + b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitCreateTableAs(n *nodes.CreateTableAsNode) string {
	return "CREATE TABLE " + n.Name.Accept(b.outer) + " AS TABLE " + n.Source.Accept(b.outer)
}

func (b *baseVisitor) VisitDropTable(n *nodes.DropTableNode) string {
	var sb strings.Builder
	sb.WriteString("DROP TABLE ")
	if n.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(n.Table.Accept(b.outer))
	if n.Cascade {
		sb.WriteString(" CASCADE")
	}
	return sb.String()
}

// validateSQLFunctionName panics if the function name contains characters
// outside the set of letters, digits, and underscores.
// This prevents SQL injection through crafted function names.
func validateSQLFunctionName(name string) {
	if !quoting.ValidIdentifier(name) {
		panic(fmt.Sprintf("sqlprobe: invalid SQL function name %q", name))
	}
}

func (b *baseVisitor) VisitSelectCore(n *nodes.SelectCore) string {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	if n.Distinct {
		sb.WriteString("DISTINCT ")
	}
	b.writeProjections(&sb, n.Projections)
	b.writeFrom(&sb, n.From)
	b.writeClause(&sb, " WHERE ", n.Wheres, " AND ")
	b.writeClause(&sb, " ORDER BY ", n.Orders, ", ")
	b.writeNodeClause(&sb, " LIMIT ", n.Limit)

	return sb.String()
}

// writeClause writes "keyword item1 sep item2 sep ..." if items is non-empty.
func (b *baseVisitor) writeClause(sb *strings.Builder, keyword string, items []nodes.Node, sep string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(keyword)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(item.Accept(b.outer))
	}
}

// writeNodeClause writes "keyword node" if node is non-nil.
func (b *baseVisitor) writeNodeClause(sb *strings.Builder, keyword string, n nodes.Node) {
	if n != nil {
		sb.WriteString(keyword)
		sb.WriteString(n.Accept(b.outer))
	}
}

func (b *baseVisitor) writeProjections(sb *strings.Builder, projections []nodes.Node) {
	if len(projections) == 0 {
		sb.WriteString("*")
		return
	}
	for i, p := range projections {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Accept(b.outer))
	}
}

func (b *baseVisitor) writeFrom(sb *strings.Builder, from nodes.Node) {
	if from != nil {
		sb.WriteString(" FROM ")
		sb.WriteString(from.Accept(b.outer))
	}
}
