package managers

import (
	"errors"
	"testing"

	"github.com/bawdo/sqlprobe/internal/testutil"
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
	"github.com/bawdo/sqlprobe/visitors"
)

func TestNewInsertManager(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewInsertManager(actor)
	if m.Statement.Into != actor {
		t.Error("expected Into to be actor table")
	}
}

func TestInsertMultipleRows(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewInsertManager(actor).
		Columns(actor.Col("first_name"), actor.Col("last_name")).
		Values("Ed", "Chase").
		Values("Nick", "Wahlberg")
	if len(m.Statement.Values) != 2 || len(m.Statement.Values[0]) != 2 {
		t.Errorf("expected 2 rows of 2 values, got %v", m.Statement.Values)
	}
}

func TestInsertToSQL(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewInsertManager(actor).
		Columns(actor.Col("first_name"), actor.Col("last_name")).
		Values("Ed", nil)

	sql, params, err := m.ToSQL(visitors.NewPostgresVisitor())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, `INSERT INTO "actor" ("first_name", "last_name") VALUES ($1, NULL)`)
	testutil.AssertParams(t, params, "Ed")
}

func TestInsertWithoutColumns(t *testing.T) {
	t.Parallel()
	m := NewInsertManager(nodes.NewTable("actor")).Values(1, "Ed")

	sql, _, err := m.ToSQL(visitors.NewSQLiteVisitor())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, `INSERT INTO "actor" VALUES (?, ?)`)
}

type insertAppendTransformer struct {
	plugins.BaseTransformer
}

func (insertAppendTransformer) TransformInsert(stmt *nodes.InsertStatement) (*nodes.InsertStatement, error) {
	stmt.Values = append(stmt.Values, []nodes.Node{nodes.Literal("injected")})
	return stmt, nil
}

func TestInsertTransformerDoesNotModifyOriginal(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewInsertManager(actor).Values("Ed").Use(insertAppendTransformer{})

	_, params, err := m.ToSQL(visitors.NewPostgresVisitor())
	testutil.AssertNoError(t, err)
	testutil.AssertParams(t, params, "Ed", "injected")
	if len(m.Statement.Values) != 1 {
		t.Errorf("expected original to have 1 row, got %d", len(m.Statement.Values))
	}
}

func TestInsertTransformerCalled(t *testing.T) {
	t.Parallel()
	ct := &countingTransformer{}
	m := NewInsertManager(nodes.NewTable("actor")).Values("Ed")
	if m.Use(ct) != m {
		t.Error("Use should return self")
	}

	_, _, err := m.ToSQL(visitors.NewPostgresVisitor())
	testutil.AssertNoError(t, err)
	if ct.called != 1 {
		t.Errorf("expected transformer called once, got %d", ct.called)
	}
}

func TestInsertTransformerErrorStopsGeneration(t *testing.T) {
	t.Parallel()
	m := NewInsertManager(nodes.NewTable("actor")).Values("Ed").Use(failingTransformer{})

	sql, _, err := m.ToSQL(visitors.NewPostgresVisitor())
	if !errors.Is(err, errTransform) {
		t.Fatalf("expected errTransform, got %v", err)
	}
	if sql != "" {
		t.Errorf("expected empty SQL on error, got %q", sql)
	}
}
