package catalog

import "fmt"

// Entry pairs a canonical locale tag with its table.
type Entry struct {
	Tag   string
	Table *Table
}

// Registry is the ordered, immutable list of generated locale tables.
type Registry struct {
	entries []Entry
	byTag   map[string]*Table
}

// NewRegistry builds a registry keeping the order of entries. It panics on a
// nil table or a repeated tag; generated code never produces either.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		byTag:   make(map[string]*Table, len(entries)),
	}
	for _, e := range entries {
		if e.Table == nil {
			panic(fmt.Sprintf("catalog: nil table for tag %q", e.Tag))
		}
		if _, ok := r.byTag[e.Tag]; ok {
			panic(fmt.Sprintf("catalog: duplicate tag %q", e.Tag))
		}
		r.byTag[e.Tag] = e.Table
		r.entries = append(r.entries, e)
	}
	return r
}

// Entries returns a copy of the registry's (tag, table) pairs.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Tags returns the registered tags in registry order.
func (r *Registry) Tags() []string {
	if r == nil {
		return nil
	}
	tags := make([]string, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.Tag
	}
	return tags
}

// Table returns the table registered under tag.
func (r *Registry) Table(tag string) (*Table, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.byTag[tag]
	return t, ok
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}
