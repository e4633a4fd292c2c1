package syscalls

import (
	"fmt"
	"sort"
	"strings"
)

// Registry indexes syscall schemas by number and by lowercase name. It is
// built once per session and never mutated afterwards; a number maps to
// exactly one schema for the registry's lifetime.
type Registry struct {
	byNumber map[uint64]*Schema
	byName   map[string]*Schema
}

// NewRegistry builds the registry from the static per-category definition
// tables. A duplicate number is a programming error in the tables and
// fails construction.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		byNumber: make(map[uint64]*Schema),
		byName:   make(map[string]*Schema),
	}

	tables := []struct {
		defs     []*Schema
		category Category
	}{
		{fileSyscalls, File},
		{networkSyscalls, Network},
		{processSyscalls, Process},
		{memorySyscalls, Memory},
		{signalSyscalls, Signal},
		{ipcSyscalls, IPC},
		{threadSyscalls, Thread},
		{timeSyscalls, Time},
		{sysinfoSyscalls, Sysinfo},
		{securitySyscalls, Security},
		{debugSyscalls, Debug},
		{miscSyscalls, Misc},
	}

	for _, t := range tables {
		for _, def := range t.defs {
			if err := r.install(def, t.category); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func (r *Registry) install(def *Schema, category Category) error {
	if existing, ok := r.byNumber[def.Number]; ok {
		return fmt.Errorf("syscall number %d defined twice (%s, %s)",
			def.Number, existing.Name, def.Name)
	}

	def.Category = category

	r.byNumber[def.Number] = def
	r.byName[strings.ToLower(def.Name)] = def

	return nil
}

// ByNumber looks up the schema for a syscall number. A miss is not an
// error: unknown numbers degrade to raw rendering upstream.
func (r *Registry) ByNumber(num uint64) (*Schema, bool) {
	s, ok := r.byNumber[num]

	return s, ok
}

// ByName looks up a schema by case-insensitive name.
func (r *Registry) ByName(name string) (*Schema, bool) {
	s, ok := r.byName[strings.ToLower(name)]

	return s, ok
}

// Len reports how many schemas are installed.
func (r *Registry) Len() int { return len(r.byNumber) }

// All returns every schema ordered by number.
func (r *Registry) All() []*Schema {
	out := make([]*Schema, 0, len(r.byNumber))
	for _, s := range r.byNumber {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out
}

// ByCategory returns every schema in one category, ordered by number.
func (r *Registry) ByCategory(c Category) []*Schema {
	var out []*Schema

	for _, s := range r.All() {
		if s.Category == c {
			out = append(out, s)
		}
	}

	return out
}
