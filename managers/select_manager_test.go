package managers

import (
	"errors"
	"testing"

	"github.com/bawdo/sqlprobe/internal/testutil"
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
	"github.com/bawdo/sqlprobe/visitors"
)

func TestNewSelectManagerSetsFrom(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewSelectManager(actor)

	if m.Core.From != actor {
		t.Error("expected From to be the actor table")
	}
	if len(m.Core.Projections) != 0 || len(m.Core.Wheres) != 0 {
		t.Error("expected empty projections and wheres")
	}
}

func TestSelectReplacesProjections(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewSelectManager(actor)

	m.Select(actor.Col("actor_id"))
	m.Select(actor.Col("first_name"), actor.Col("last_name"))

	if len(m.Core.Projections) != 2 {
		t.Fatalf("expected 2 projections after replacement, got %d", len(m.Core.Projections))
	}
}

func TestSelectWhereSkipsNil(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewSelectManager(actor).Where(nil, actor.Col("first_name").Eq("Ed"), nil)
	if len(m.Core.Wheres) != 1 {
		t.Errorf("expected 1 where, got %d", len(m.Core.Wheres))
	}
}

func TestSelectDistinctToggle(t *testing.T) {
	t.Parallel()
	m := NewSelectManager(nodes.NewTable("actor")).Distinct()
	if !m.Core.Distinct {
		t.Error("expected Distinct to be set")
	}
	m.Distinct(false)
	if m.Core.Distinct {
		t.Error("expected Distinct to be cleared")
	}
}

func TestSelectChainingReturnsSelf(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewSelectManager(actor)
	if m.Select(actor.Star()) != m || m.Where(actor.Col("a").Eq(1)) != m ||
		m.Order(actor.Col("a").Asc()) != m || m.Limit(1) != m || m.Distinct() != m ||
		m.Use(plugins.BaseTransformer{}) != m {
		t.Error("expected every builder method to return self")
	}
}

func TestSelectToSQL(t *testing.T) {
	t.Parallel()
	address := nodes.NewTable("address")
	m := NewSelectManager(address).
		Where(address.Col("district").Eq("Alberta")).
		Order(nodes.Length(address.Col("phone")).Asc()).
		Limit(2)

	sql, params, err := m.ToSQL(visitors.NewPostgresVisitor())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		`SELECT * FROM "address" WHERE "address"."district" = $1 ORDER BY LENGTH("address"."phone") ASC LIMIT $2`)
	testutil.AssertParams(t, params, "Alberta", 2)
}

func TestSelectToSQLResetsParams(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewSelectManager(actor).Where(actor.Col("first_name").Eq("Ed"))
	v := visitors.NewSQLiteVisitor()

	_, _, err := m.ToSQL(v)
	testutil.AssertNoError(t, err)
	_, params, err := m.ToSQL(v)
	testutil.AssertNoError(t, err)
	testutil.AssertParams(t, params, "Ed")
}

func TestSelectToSQLInlineHasNoParams(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewSelectManager(actor).Where(actor.Col("first_name").Eq("Ed"))

	sql, params, err := m.ToSQL(visitors.NewMySQLVisitor(visitors.WithoutParams()))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, "SELECT * FROM `actor` WHERE `actor`.`first_name` = 'Ed'")
	testutil.AssertParams(t, params)
}

func TestSelectTransformerCalled(t *testing.T) {
	t.Parallel()
	ct := &countingTransformer{}
	m := NewSelectManager(nodes.NewTable("actor")).Use(ct)

	_, _, err := m.ToSQL(visitors.NewPostgresVisitor())
	testutil.AssertNoError(t, err)
	if ct.called != 1 {
		t.Errorf("expected transformer called once, got %d", ct.called)
	}
}

type selectAppendTransformer struct {
	plugins.BaseTransformer
}

func (selectAppendTransformer) TransformSelect(core *nodes.SelectCore) (*nodes.SelectCore, error) {
	core.Wheres = append(core.Wheres, nodes.NewAttribute(core.From, "injected").IsNull())
	return core, nil
}

func TestSelectTransformerDoesNotModifyOriginal(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewSelectManager(actor).Use(selectAppendTransformer{})

	sql, _, err := m.ToSQL(visitors.NewPostgresVisitor())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, `SELECT * FROM "actor" WHERE "actor"."injected" IS NULL`)
	if len(m.Core.Wheres) != 0 {
		t.Errorf("expected original to have no wheres, got %d", len(m.Core.Wheres))
	}
}

func TestSelectTransformerErrorStopsGeneration(t *testing.T) {
	t.Parallel()
	m := NewSelectManager(nodes.NewTable("actor")).Use(failingTransformer{})

	sql, params, err := m.ToSQL(visitors.NewPostgresVisitor())
	if !errors.Is(err, errTransform) {
		t.Fatalf("expected errTransform, got %v", err)
	}
	if sql != "" || params != nil {
		t.Errorf("expected empty output on error, got %q %v", sql, params)
	}
}

func TestCloneCoreIsIndependent(t *testing.T) {
	t.Parallel()
	actor := nodes.NewTable("actor")
	m := NewSelectManager(actor).Order(actor.Col("last_name").Desc()).Limit(3)
	clone := m.CloneCore()
	clone.Orders = append(clone.Orders, actor.Col("first_name").Asc())

	if len(m.Core.Orders) != 1 {
		t.Errorf("expected original orders untouched, got %d", len(m.Core.Orders))
	}
	if clone.Limit != m.Core.Limit {
		t.Error("expected limit to be carried over")
	}
}
