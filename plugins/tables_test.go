package plugins

import (
	"testing"

	"github.com/bawdo/sqlprobe/nodes"
)

func TestInsertTarget(t *testing.T) {
	actor := nodes.NewTable("actor")
	ref, ok := InsertTarget(&nodes.InsertStatement{Into: actor})
	if !ok || ref.Name != "actor" {
		t.Errorf("expected actor target, got %+v (ok=%v)", ref, ok)
	}
}

func TestDeleteTarget(t *testing.T) {
	ref, ok := DeleteTarget(&nodes.DeleteStatement{From: nodes.NewTable("payment")})
	if !ok || ref.Name != "payment" {
		t.Errorf("expected payment target, got %+v (ok=%v)", ref, ok)
	}
}

func TestDeleteTargetNonTable(t *testing.T) {
	_, ok := DeleteTarget(&nodes.DeleteStatement{From: nodes.Literal("actor")})
	if ok {
		t.Error("expected non-table target to be skipped")
	}
}
