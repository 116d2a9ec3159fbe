package queries

import (
	"strings"

	"github.com/bawdo/sqlprobe/managers"
	"github.com/bawdo/sqlprobe/nodes"
	"github.com/bawdo/sqlprobe/plugins"
)

// Pattern match options.
const (
	PatternStart    = "START"
	PatternEnd      = "END"
	PatternContains = "CONTAINS"
)

// PatternRequest selects rows whose column matches a LIKE pattern built
// from Pattern according to Option.
type PatternRequest struct {
	Table   string
	Column  string
	Option  string
	Pattern string
}

// likePattern builds the LIKE operand. START upper-cases the pattern.
// Wildcards inside pattern are passed through unescaped.
func likePattern(option, pattern string) (string, bool) {
	switch strings.ToUpper(option) {
	case PatternStart:
		return strings.ToUpper(pattern) + "%", true
	case PatternEnd:
		return "%" + pattern, true
	case PatternContains:
		return "%" + pattern + "%", true
	}
	return "", false
}

// CompilePattern compiles SELECT * ... WHERE column LIKE pattern.
func CompilePattern(v nodes.Visitor, req PatternRequest, ts ...plugins.Transformer) (Statement, error) {
	const op = "like"
	if err := checkIdentifier(op, "table", req.Table); err != nil {
		return Statement{}, err
	}
	like, ok := likePattern(req.Option, req.Pattern)
	if !ok {
		return Statement{}, invalid(op, "option", ErrInvalidOption,
			"%q (want START, END or CONTAINS)", req.Option)
	}
	if err := checkIdentifier(op, "column", req.Column); err != nil {
		return Statement{}, err
	}

	table := nodes.NewTable(req.Table)
	m := managers.NewSelectManager(table).Where(table.Col(req.Column).Like(like))
	for _, t := range ts {
		m.Use(t)
	}
	return generate(v, m)
}
