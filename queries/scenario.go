package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/bawdo/sqlprobe/plugins/readonly"
)

// Scenario is a scope holding one pooled connection and the clones created
// on it. It is confined to the goroutine running the scenario callback.
type Scenario struct {
	q      *Queries
	conn   *sql.Conn
	guard  *readonly.Guard
	clones []string
}

type scenarioConfig struct {
	queryOpts []Option
	protect   bool
}

// ScenarioOption configures RunScenario.
type ScenarioOption func(*scenarioConfig)

// WithQueryOptions passes options to the scenario's Queries.
func WithQueryOptions(opts ...Option) ScenarioOption {
	return func(c *scenarioConfig) { c.queryOpts = append(c.queryOpts, opts...) }
}

// ProtectSources refuses INSERT, DELETE and DropTable against every table
// the scenario has cloned, so only the clones can be mutated.
func ProtectSources() ScenarioOption {
	return func(c *scenarioConfig) { c.protect = true }
}

// RunScenario acquires a connection from db, runs fn with a Scenario bound
// to it, then drops every table cloned through the Scenario in reverse
// order and releases the connection. Teardown runs on every exit path,
// including a panic in fn, and is not cancelled with ctx. Teardown errors
// are joined with the error returned by fn.
func RunScenario(ctx context.Context, db *sql.DB, fn func(context.Context, *Scenario) error, opts ...ScenarioOption) (err error) {
	var cfg scenarioConfig
	for _, o := range opts {
		o(&cfg)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("scenario: acquire connection: %w", err)
	}

	sc := &Scenario{conn: conn, q: New(conn, cfg.queryOpts...)}
	if cfg.protect {
		sc.guard = readonly.New()
		sc.q.transformers = append(sc.q.transformers, sc.guard)
	}

	defer func() {
		r := recover()
		terr := sc.teardown(context.WithoutCancel(ctx))
		if r != nil {
			if terr != nil {
				sc.q.logger.Error("scenario teardown failed", "error", terr)
			}
			panic(r)
		}
		err = errors.Join(err, terr)
	}()

	return fn(ctx, sc)
}

// Queries returns the Queries bound to the scenario's connection.
func (s *Scenario) Queries() *Queries { return s.q }

// Clone clones table and records the clone for teardown.
func (s *Scenario) Clone(ctx context.Context, table string) (string, error) {
	clone, err := s.q.CloneTable(ctx, table)
	if err != nil {
		return "", err
	}
	s.clones = append(s.clones, clone)
	if s.guard != nil {
		s.guard.Protect(table)
	}
	return clone, nil
}

// Clones returns the recorded clones in creation order.
func (s *Scenario) Clones() []string {
	return slices.Clone(s.clones)
}

func (s *Scenario) teardown(ctx context.Context) error {
	var errs []error
	for _, clone := range slices.Backward(s.clones) {
		if err := s.q.DropTable(ctx, clone); err != nil {
			errs = append(errs, err)
		}
	}
	s.clones = nil
	if err := s.conn.Close(); err != nil {
		errs = append(errs, fmt.Errorf("scenario: release connection: %w", err))
	}
	return errors.Join(errs...)
}
