// Package queries compiles structured query requests to SQL and executes
// them through a caller-supplied connection.
//
// Identifiers are checked against a plain-identifier grammar and quoted by
// the dialect; values are always sent as bind parameters. Every operation
// returns its error: a *ValidationError when the request is rejected before
// reaching the database, a *DatabaseError when the driver reports a fault.
package queries

import (
	"context"
	"io"
	"log/slog"

	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// Queries executes compiled requests against one Querier. It is safe for
// concurrent use when the Querier is.
type Queries struct {
	db           Querier
	dialect      Dialect
	logger       *slog.Logger
	transformers []plugins.Transformer
}

// Option configures Queries.
type Option func(*Queries)

// WithDialect selects the SQL dialect. The default is Postgres.
func WithDialect(d Dialect) Option {
	return func(q *Queries) { q.dialect = d }
}

// WithLogger sets the structured logger. By default logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(q *Queries) {
		if l != nil {
			q.logger = l
		}
	}
}

// WithTransformers registers AST transformers run on every SELECT, INSERT
// and DELETE before SQL generation.
func WithTransformers(ts ...plugins.Transformer) Option {
	return func(q *Queries) { q.transformers = append(q.transformers, ts...) }
}

// New returns Queries executing on db.
func New(db Querier, opts ...Option) *Queries {
	q := &Queries{
		db:      db,
		dialect: Postgres,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

// Dialect returns the configured dialect.
func (q *Queries) Dialect() Dialect { return q.dialect }

func (q *Queries) visitor() (nodes.Visitor, error) {
	return q.dialect.Visitor()
}

func (q *Queries) compile(ctx context.Context, op string, fn func(nodes.Visitor) (Statement, error)) (Statement, error) {
	v, err := q.visitor()
	if err != nil {
		return Statement{}, err
	}
	st, err := fn(v)
	if err != nil {
		q.logger.DebugContext(ctx, "request rejected", "op", op, "error", err)
		return Statement{}, err
	}
	return st, nil
}

// CloneTable copies table into <table>_clone and returns the clone's name.
// A missing source fails with ErrTableNotFound before the copy is issued.
func (q *Queries) CloneTable(ctx context.Context, table string) (string, error) {
	st, err := q.compile(ctx, "clone_table", func(v nodes.Visitor) (Statement, error) {
		return CompileClone(v, table)
	})
	if err != nil {
		return "", err
	}
	exists, err := q.HasTable(ctx, table)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", invalid("clone_table", "table", ErrTableNotFound, "%q", table)
	}
	if _, err := q.exec(ctx, "clone_table", st); err != nil {
		return "", err
	}
	clone := CloneName(table)
	q.logger.InfoContext(ctx, "table cloned", "source", table, "clone", clone)
	return clone, nil
}

// DropTable drops table and its dependent objects if it exists. Any
// registered transformer implementing plugins.DropChecker may refuse it.
func (q *Queries) DropTable(ctx context.Context, table string) error {
	for _, t := range q.transformers {
		if dc, ok := t.(plugins.DropChecker); ok {
			if err := dc.CheckDrop(table); err != nil {
				return err
			}
		}
	}
	st, err := q.compile(ctx, "drop_table", func(v nodes.Visitor) (Statement, error) {
		return CompileDrop(v, table)
	})
	if err != nil {
		return err
	}
	if _, err := q.exec(ctx, "drop_table", st); err != nil {
		return err
	}
	q.logger.InfoContext(ctx, "table dropped", "table", table)
	return nil
}

// Select runs a filtered SELECT.
func (q *Queries) Select(ctx context.Context, req SelectRequest) (Rows, error) {
	st, err := q.compile(ctx, "select", func(v nodes.Visitor) (Statement, error) {
		return CompileSelect(v, req, q.transformers...)
	})
	if err != nil {
		return nil, err
	}
	return q.query(ctx, "select", st)
}

// SelectOrdered runs an ordered, optionally limited SELECT.
func (q *Queries) SelectOrdered(ctx context.Context, req OrderedSelectRequest) (Rows, error) {
	st, err := q.compile(ctx, "select_ordered", func(v nodes.Visitor) (Statement, error) {
		return CompileOrderedSelect(v, req, q.transformers...)
	})
	if err != nil {
		return nil, err
	}
	return q.query(ctx, "select_ordered", st)
}

// Aggregate runs a scalar aggregate. The single result row holds the value
// under the lower-cased operator name.
func (q *Queries) Aggregate(ctx context.Context, req AggregateRequest) (Rows, error) {
	st, err := q.compile(ctx, "aggregate", func(v nodes.Visitor) (Statement, error) {
		return compileAggregate(v, req, q.logger, q.transformers)
	})
	if err != nil {
		return nil, err
	}
	return q.query(ctx, "aggregate", st)
}

// Like runs a LIKE pattern SELECT.
func (q *Queries) Like(ctx context.Context, req PatternRequest) (Rows, error) {
	st, err := q.compile(ctx, "like", func(v nodes.Visitor) (Statement, error) {
		return CompilePattern(v, req, q.transformers...)
	})
	if err != nil {
		return nil, err
	}
	return q.query(ctx, "like", st)
}

// Insert inserts one row.
func (q *Queries) Insert(ctx context.Context, req InsertRequest) (CommandResult, error) {
	st, err := q.compile(ctx, "insert", func(v nodes.Visitor) (Statement, error) {
		return CompileInsert(v, req, q.transformers...)
	})
	if err != nil {
		return CommandResult{}, err
	}
	return q.exec(ctx, "insert", st)
}

// Delete deletes matching rows.
func (q *Queries) Delete(ctx context.Context, req DeleteRequest) (CommandResult, error) {
	st, err := q.compile(ctx, "delete", func(v nodes.Visitor) (Statement, error) {
		return CompileDelete(v, req, q.transformers...)
	})
	if err != nil {
		return CommandResult{}, err
	}
	return q.exec(ctx, "delete", st)
}
