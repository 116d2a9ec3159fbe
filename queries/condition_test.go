package queries

import (
	"errors"
	"testing"

	"github.com/bawdo/sqlprobe/internal/testutil"
	"github.com/bawdo/sqlprobe/visitors"
)

func inlineSelect(t *testing.T, conds []Condition, comb Combinator) string {
	t.Helper()
	st, err := CompileSelect(visitors.NewPostgresVisitor(visitors.WithoutParams()),
		SelectRequest{Table: "actor", Conditions: conds, Combinator: comb})
	testutil.AssertNoError(t, err)
	return st.SQL
}

func TestConditionOperators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"null", nil, `"actor"."last_name" IS NULL`},
		{"not null sentinel", NotNull, `"actor"."last_name" IS NOT NULL`},
		{"greater than", ">M", `"actor"."last_name" > 'M'`},
		{"less than", "<M", `"actor"."last_name" < 'M'`},
		{"only first symbol stripped", ">>M", `"actor"."last_name" > '>M'`},
		{"less than then greater", "<>M", `"actor"."last_name" < '>M'`},
		{"text equals", "CAGE", `"actor"."last_name" = 'CAGE'`},
		{"quote escaped", "O'HARA", `"actor"."last_name" = 'O''HARA'`},
		{"int unquoted", 42, `"actor"."last_name" = 42`},
		{"float unquoted", 1.5, `"actor"."last_name" = 1.5`},
		{"bool", true, `"actor"."last_name" = TRUE`},
		{"lowercase not null is text", "not null", `"actor"."last_name" = 'not null'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := inlineSelect(t, []Condition{{Column: "last_name", Value: tt.value}}, "")
			testutil.AssertEqual(t, got, `SELECT * FROM "actor" WHERE `+tt.want)
		})
	}
}

func TestConditionNullIsNeverCompared(t *testing.T) {
	t.Parallel()
	st, err := CompileSelect(visitors.NewPostgresVisitor(), SelectRequest{
		Table: "actor",
		Conditions: []Condition{
			{Column: "first_name", Value: "ED"},
			{Column: "last_name", Value: nil},
		},
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, st.SQL,
		`SELECT * FROM "actor" WHERE "actor"."first_name" = $1 AND "actor"."last_name" IS NULL`)
	testutil.AssertParams(t, st.Params, "ED")
}

func TestConditionSentinelValuesAreBound(t *testing.T) {
	t.Parallel()
	st, err := CompileSelect(visitors.NewSQLiteVisitor(), SelectRequest{
		Table:      "payment",
		Conditions: []Condition{{Column: "payment_date", Value: ">2007-02-15"}},
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, st.SQL, `SELECT * FROM "payment" WHERE "payment"."payment_date" > ?`)
	testutil.AssertParams(t, st.Params, "2007-02-15")
}

func TestConditionCombinators(t *testing.T) {
	t.Parallel()
	conds := []Condition{
		{Column: "first_name", Value: "ED"},
		{Column: "first_name", Value: "NICK"},
	}
	tests := []struct {
		comb Combinator
		want string
	}{
		{"", `"actor"."first_name" = 'ED' AND "actor"."first_name" = 'NICK'`},
		{And, `"actor"."first_name" = 'ED' AND "actor"."first_name" = 'NICK'`},
		{"and", `"actor"."first_name" = 'ED' AND "actor"."first_name" = 'NICK'`},
		{Or, `("actor"."first_name" = 'ED' OR "actor"."first_name" = 'NICK')`},
		{"or", `("actor"."first_name" = 'ED' OR "actor"."first_name" = 'NICK')`},
	}
	for _, tt := range tests {
		got := inlineSelect(t, conds, tt.comb)
		testutil.AssertEqual(t, got, `SELECT * FROM "actor" WHERE `+tt.want)
	}
}

func TestConditionSingleOrIsNotGrouped(t *testing.T) {
	t.Parallel()
	got := inlineSelect(t, []Condition{{Column: "first_name", Value: "ED"}}, Or)
	testutil.AssertEqual(t, got, `SELECT * FROM "actor" WHERE "actor"."first_name" = 'ED'`)
}

func TestConditionEmptyOmitsWhere(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, inlineSelect(t, nil, ""), `SELECT * FROM "actor"`)
	testutil.AssertEqual(t, inlineSelect(t, []Condition{}, Or), `SELECT * FROM "actor"`)
}

func TestConditionInvalidCombinator(t *testing.T) {
	t.Parallel()
	_, err := CompileSelect(visitors.NewPostgresVisitor(), SelectRequest{
		Table:      "actor",
		Conditions: []Condition{{Column: "first_name", Value: "ED"}},
		Combinator: "XOR",
	})
	if !errors.Is(err, ErrInvalidCombinator) {
		t.Fatalf("expected ErrInvalidCombinator, got %v", err)
	}
}

func TestConditionRejectsBadIdentifier(t *testing.T) {
	t.Parallel()
	_, err := CompileSelect(visitors.NewPostgresVisitor(), SelectRequest{
		Table:      "actor",
		Conditions: []Condition{{Column: "first_name = 'x' OR 1=1 --", Value: "ED"}},
	})
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "column" {
		t.Errorf("expected column ValidationError, got %#v", err)
	}
}

func TestConditionRejectsUnsupportedValue(t *testing.T) {
	t.Parallel()
	_, err := CompileSelect(visitors.NewPostgresVisitor(), SelectRequest{
		Table:      "actor",
		Conditions: []Condition{{Column: "first_name", Value: []string{"ED"}}},
	})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
}

func TestPairs(t *testing.T) {
	t.Parallel()
	conds, err := Pairs([]string{"first_name", "last_name"}, []any{"ED", nil})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(conds), 2)
	testutil.AssertEqual(t, conds[0], Condition{Column: "first_name", Value: "ED"})
	testutil.AssertEqual(t, conds[1].Value, any(nil))
}

func TestPairsLengthMismatch(t *testing.T) {
	t.Parallel()
	_, err := Pairs([]string{"first_name"}, []any{"ED", "NICK"})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestSelectColumns(t *testing.T) {
	t.Parallel()
	st, err := CompileSelect(visitors.NewMySQLVisitor(), SelectRequest{
		Table:   "actor",
		Columns: []string{"first_name", "last_name"},
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, st.SQL, "SELECT `actor`.`first_name`, `actor`.`last_name` FROM `actor`")
}

func TestSelectRejectsBadTable(t *testing.T) {
	t.Parallel()
	for _, table := range []string{"", "actor; DROP TABLE actor", `"actor"`, "1actor"} {
		_, err := CompileSelect(visitors.NewPostgresVisitor(), SelectRequest{Table: table})
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("table %q: expected ErrInvalidIdentifier, got %v", table, err)
		}
	}
}
