package managers

import (
	"testing"

	"github.com/bawdo/sqlprobe/internal/testutil"
	"github.com/bawdo/sqlprobe/visitors"
)

func TestCreateTableAs(t *testing.T) {
	t.Parallel()
	n := CreateTableAs("actor_clone", "actor")
	testutil.AssertSQL(t, visitors.NewPostgresVisitor(), n, `CREATE TABLE "actor_clone" AS TABLE "actor"`)
	testutil.AssertSQL(t, visitors.NewSQLiteVisitor(), n, `CREATE TABLE "actor_clone" AS SELECT * FROM "actor"`)
}

func TestDropTable(t *testing.T) {
	t.Parallel()
	n := DropTable("actor_clone")
	if !n.IfExists || !n.Cascade {
		t.Error("expected IF EXISTS and CASCADE to be set")
	}
	testutil.AssertSQL(t, visitors.NewPostgresVisitor(), n, `DROP TABLE IF EXISTS "actor_clone" CASCADE`)
	testutil.AssertSQL(t, visitors.NewSQLiteVisitor(), n, `DROP TABLE IF EXISTS "actor_clone"`)
}
