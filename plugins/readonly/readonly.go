// Package readonly provides a Transformer that refuses INSERT and DELETE
// statements targeting protected tables, and refuses dropping them through
// plugins.DropChecker. SELECT statements pass through.
//
// It guards source tables while a test scenario works on clones of them:
//
//	ro := readonly.New("actor", "address")
//	m := managers.NewDeleteManager(nodes.NewTable("actor"))
//	m.Use(ro)
//	_, _, err := m.ToSQL(v) // err wraps readonly.ErrProtectedTable
//
// Tables can be added after construction with Protect; the guard is safe
// for concurrent use.
package readonly

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// ErrProtectedTable is returned when a write targets a protected table.
var ErrProtectedTable = errors.New("table is read-only")

var _ plugins.DropChecker = (*Guard)(nil)

// Guard is a Transformer that blocks writes to a set of tables.
type Guard struct {
	plugins.BaseTransformer

	mu     sync.RWMutex
	tables map[string]bool
}

// New creates a Guard protecting the named tables. Names match
// case-insensitively.
func New(tables ...string) *Guard {
	g := &Guard{tables: make(map[string]bool, len(tables))}
	g.Protect(tables...)
	return g
}

// Protect adds tables to the protected set.
func (g *Guard) Protect(tables ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, t := range tables {
		g.tables[strings.ToLower(t)] = true
	}
}

// Protected reports whether writes to the named table are refused.
func (g *Guard) Protected(table string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tables[strings.ToLower(table)]
}

// CheckDrop refuses to drop protected tables.
func (g *Guard) CheckDrop(table string) error {
	if g.Protected(table) {
		return fmt.Errorf("drop table %q: %w", table, ErrProtectedTable)
	}
	return nil
}

// TransformInsert refuses inserts into protected tables.
func (g *Guard) TransformInsert(stmt *nodes.InsertStatement) (*nodes.InsertStatement, error) {
	if ref, ok := plugins.InsertTarget(stmt); ok && g.Protected(ref.Name) {
		return nil, fmt.Errorf("insert into %q: %w", ref.Name, ErrProtectedTable)
	}
	return stmt, nil
}

// TransformDelete refuses deletes from protected tables.
func (g *Guard) TransformDelete(stmt *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	if ref, ok := plugins.DeleteTarget(stmt); ok && g.Protected(ref.Name) {
		return nil, fmt.Errorf("delete from %q: %w", ref.Name, ErrProtectedTable)
	}
	return stmt, nil
}
