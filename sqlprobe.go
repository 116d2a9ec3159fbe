// Package sqlprobe builds and runs dynamic SQL for exercising a relational
// database: filtered selects, aggregates, pattern matches, ordered selects,
// inserts and deletes, plus table cloning for scenarios that must leave
// the source data untouched.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/bawdo/sqlprobe/queries (operations and compilers)
//   - github.com/bawdo/sqlprobe/managers (statement builders)
//   - github.com/bawdo/sqlprobe/nodes (AST nodes)
//   - github.com/bawdo/sqlprobe/visitors (SQL generation)
//   - github.com/bawdo/sqlprobe/plugins (statement transformers)
package sqlprobe

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/bawdo/sqlprobe/internal/config"
	"github.com/bawdo/sqlprobe/internal/database"
	"github.com/bawdo/sqlprobe/queries"
)

// --- Operation Types ---

// Queries runs operations against one pool or connection.
type Queries = queries.Queries

// Scenario is a connection-scoped unit of work whose clones are dropped
// when it ends.
type Scenario = queries.Scenario

// Condition filters on one column.
type Condition = queries.Condition

// Combinator joins the conditions of one request.
type Combinator = queries.Combinator

// Dialect selects the SQL generator.
type Dialect = queries.Dialect

// Row and Rows are query results keyed by column name.
type (
	Row  = queries.Row
	Rows = queries.Rows
)

// --- Requests ---

type (
	SelectRequest        = queries.SelectRequest
	OrderedSelectRequest = queries.OrderedSelectRequest
	AggregateRequest     = queries.AggregateRequest
	PatternRequest       = queries.PatternRequest
	InsertRequest        = queries.InsertRequest
	DeleteRequest        = queries.DeleteRequest
)

// --- Errors ---

type (
	ValidationError = queries.ValidationError
	DatabaseError   = queries.DatabaseError
)

var (
	ErrUniqueViolation  = queries.ErrUniqueViolation
	ErrValueTooLong     = queries.ErrValueTooLong
	ErrNotNullViolation = queries.ErrNotNullViolation
	ErrTableNotFound    = queries.ErrTableNotFound
)

// --- Constants ---

const (
	Postgres = queries.Postgres
	MySQL    = queries.MySQL
	SQLite   = queries.SQLite

	And = queries.And
	Or  = queries.Or

	NotNull = queries.NotNull

	PatternStart    = queries.PatternStart
	PatternEnd      = queries.PatternEnd
	PatternContains = queries.PatternContains
)

// --- Constructors ---

// New returns Queries executing on db.
func New(db queries.Querier, opts ...queries.Option) *queries.Queries {
	return queries.New(db, opts...)
}

// RunScenario runs fn on a dedicated connection and drops every table it
// cloned before returning, whether fn succeeds, fails or panics.
func RunScenario(ctx context.Context, db *sql.DB, fn func(context.Context, *queries.Scenario) error, opts ...queries.ScenarioOption) error {
	return queries.RunScenario(ctx, db, fn, opts...)
}

// Connect loads configuration from the environment and the given .env
// files on fs, opens a pool and returns Queries bound to it. The caller
// closes the returned pool.
func Connect(ctx context.Context, fs afero.Fs, logger *slog.Logger, files ...string) (*sql.DB, *queries.Queries, error) {
	cfg, err := config.Load(fs, files...)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect %s: %w", cfg.Engine, err)
	}
	return db, queries.New(db, queries.WithDialect(cfg.Engine), queries.WithLogger(logger)), nil
}
