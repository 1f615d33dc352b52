package convert

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/hexpress/input/kramdown"
)

// Table maps element type tags to rules.
//
// Tables are not safe for concurrent modification. Configure a table
// completely before handing it to a converter.
type Table struct {
	rules *treemap.Map // string → Rule, ordered by tag
}

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return &Table{rules: treemap.NewWithStringComparator()}
}

// DefaultTable creates a table holding the built-in rules. Every call
// returns a new table.
func DefaultTable() *Table {
	t := NewTable()
	t.Register(RootRule(), kramdown.Root)
	t.Register(HeaderRule(), kramdown.Header)
	t.Register(CodeblockRule(), kramdown.Codeblock)
	t.Register(PassthroughRule(), kramdown.P, kramdown.Blockquote, kramdown.UL, kramdown.LI)
	t.Register(TextRule(), kramdown.Text, kramdown.Codespan, kramdown.Blank)
	return t
}

// Register associates rule with each of the given types, replacing earlier
// associations. It returns t for chaining.
func (t *Table) Register(rule Rule, types ...kramdown.Type) *Table {
	for _, typ := range types {
		tracer().Debugf("register rule for type %q", typ)
		t.rules.Put(string(typ), rule)
	}
	return t
}

// Unregister removes the rules for the given types.
func (t *Table) Unregister(types ...kramdown.Type) *Table {
	for _, typ := range types {
		t.rules.Remove(string(typ))
	}
	return t
}

// Resolve looks up the rule for type typ. If there is none, an
// *UnsupportedNodeTypeError is returned.
func (t *Table) Resolve(typ kramdown.Type) (Rule, error) {
	if r, found := t.rules.Get(string(typ)); found {
		return r.(Rule), nil
	}
	return nil, &UnsupportedNodeTypeError{Type: typ}
}

// Supports returns true if t holds a rule for typ.
func (t *Table) Supports(typ kramdown.Type) bool {
	_, found := t.rules.Get(string(typ))
	return found
}

// Types returns the registered type tags in lexical order.
func (t *Table) Types() []kramdown.Type {
	keys := t.rules.Keys()
	types := make([]kramdown.Type, len(keys))
	for i, k := range keys {
		types[i] = kramdown.Type(k.(string))
	}
	return types
}

// Size returns the number of registered type tags.
func (t *Table) Size() int {
	return t.rules.Size()
}

// Clone returns a copy of t. Rules are shared, the mapping is not.
func (t *Table) Clone() *Table {
	c := NewTable()
	it := t.rules.Iterator()
	for it.Next() {
		c.rules.Put(it.Key(), it.Value())
	}
	return c
}
