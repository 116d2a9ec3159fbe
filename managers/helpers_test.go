package managers

import (
	"errors"

	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

var errTransform = errors.New("transform failed")

// countingTransformer records how many times each hook ran.
type countingTransformer struct {
	plugins.BaseTransformer
	called int
}

func (c *countingTransformer) TransformSelect(core *nodes.SelectCore) (*nodes.SelectCore, error) {
	c.called++
	return core, nil
}

func (c *countingTransformer) TransformInsert(stmt *nodes.InsertStatement) (*nodes.InsertStatement, error) {
	c.called++
	return stmt, nil
}

func (c *countingTransformer) TransformDelete(stmt *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	c.called++
	return stmt, nil
}

// failingTransformer aborts every statement.
type failingTransformer struct {
	plugins.BaseTransformer
}

func (failingTransformer) TransformSelect(*nodes.SelectCore) (*nodes.SelectCore, error) {
	return nil, errTransform
}

func (failingTransformer) TransformInsert(*nodes.InsertStatement) (*nodes.InsertStatement, error) {
	return nil, errTransform
}

func (failingTransformer) TransformDelete(*nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	return nil, errTransform
}
