package convert

import (
	"github.com/npillmayer/hexpress/engine/hexp"
)

// Rule converts a single source element. Returning a nil item without an
// error means the element produces no output.
type Rule interface {
	Apply(c *Converter, ctx Context) (hexp.Item, error)
}

// RuleFunc is an adapter to use ordinary functions as rules.
type RuleFunc func(c *Converter, ctx Context) (hexp.Item, error)

// Apply calls f(c, ctx).
func (f RuleFunc) Apply(c *Converter, ctx Context) (hexp.Item, error) {
	return f(c, ctx)
}
