package mstrace

import (
	"strings"

	"github.com/mstrace/mstrace/syscalls"
)

// Filter is the compiled accept/reject predicate over syscall name or
// category. A nil *Filter accepts everything.
type Filter struct {
	names      map[string]bool
	categories map[syscalls.Category]bool
}

// ParseFilter compiles a trace expression: a comma-separated mixture of
// syscall names and category tags, optionally prefixed "trace=". Unknown
// tokens are a usage error so typos fail fast instead of silently tracing
// nothing.
func ParseFilter(expr string, reg *syscalls.Registry) (*Filter, error) {
	expr = strings.TrimPrefix(expr, "trace=")

	if expr == "" {
		return nil, nil
	}

	f := &Filter{
		names:      make(map[string]bool),
		categories: make(map[syscalls.Category]bool),
	}

	for _, tok := range strings.Split(expr, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}

		if cat, ok := syscalls.ParseCategory(tok); ok {
			f.categories[cat] = true
			continue
		}

		if _, ok := reg.ByName(tok); ok {
			f.names[tok] = true
			continue
		}

		return nil, E(UsageError, nil, "unknown syscall or category %q in trace expression", tok)
	}

	return f, nil
}

// Allow evaluates the predicate. It runs at entry-hit, before any
// expensive argument materialization. Unknown syscalls (nil schema) only
// pass when no filter is active — there is no name to match.
func (f *Filter) Allow(schema *syscalls.Schema) bool {
	if f == nil {
		return true
	}

	if schema == nil {
		return false
	}

	if f.categories[schema.Category] {
		return true
	}

	return f.names[strings.ToLower(schema.Name)]
}
