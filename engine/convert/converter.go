package convert

import (
	"github.com/npillmayer/hexpress/engine/hexp"
	"github.com/npillmayer/hexpress/input/kramdown"
)

// Converter converts source trees to markup trees, using a dispatch table.
// Apart from the table, a converter holds no state, so one converter may be
// used for any number of (concurrent) conversions.
type Converter struct {
	table *Table
}

// Option configures a converter.
type Option func(*Converter)

// WithTable lets a converter use table instead of the default table.
func WithTable(table *Table) Option {
	return func(c *Converter) {
		if table != nil {
			c.table = table
		}
	}
}

// WithRule registers rule for types. The registration affects the
// converter's table only; a table passed in with WithTable is copied first.
func WithRule(rule Rule, types ...kramdown.Type) Option {
	return func(c *Converter) {
		c.table = c.table.Clone().Register(rule, types...)
	}
}

// New creates a converter. Without options it uses DefaultTable().
func New(opts ...Option) *Converter {
	c := &Converter{table: DefaultTable()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the dispatch table of c.
func (c *Converter) Table() *Table {
	return c.table
}

// Convert converts el and its subtree. A nil item without an error is
// returned if the rule for el produces no output.
func (c *Converter) Convert(el *kramdown.Element) (hexp.Item, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	ctx := contextOf(el)
	rule, err := c.table.Resolve(ctx.Type)
	if err != nil {
		tracer().Errorf("cannot convert element: %v", err)
		return nil, err
	}
	tracer().Debugf("convert %s", ctx.Type)
	return rule.Apply(c, ctx)
}

// ConvertChildren converts the children of ctx in order. Nil results are
// dropped. If any child fails, no partial result is returned.
func (c *Converter) ConvertChildren(ctx Context) ([]hexp.Item, error) {
	if len(ctx.Children) == 0 {
		return nil, nil
	}
	items := make([]hexp.Item, 0, len(ctx.Children))
	for _, child := range ctx.Children {
		item, err := c.Convert(child)
		if err != nil {
			return nil, err
		}
		if !hexp.IsNil(item) {
			items = append(items, item)
		}
	}
	return items, nil
}

// Tag creates an element named tag, carrying the attributes of ctx and its
// converted children.
func (c *Converter) Tag(tag string, ctx Context) (hexp.Item, error) {
	children, err := c.ConvertChildren(ctx)
	if err != nil {
		return nil, err
	}
	return hexp.H(tag, ctx.Attr, children...), nil
}
