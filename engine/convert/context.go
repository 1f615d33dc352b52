package convert

import (
	"github.com/npillmayer/hexpress/input/kramdown"
)

// Context is what a rule gets to see of a source element. It is created
// fresh for every element and handed to the rule by value.
type Context struct {
	Type     kramdown.Type
	Value    string
	Attr     map[string]string
	Children []*kramdown.Element
	Options  kramdown.Options
}

// contextOf decomposes el into a conversion context. Attributes, options
// and the list of children are copied, so rules cannot modify the source
// tree through them. Option values and child elements are not copied.
func contextOf(el *kramdown.Element) Context {
	ctx := Context{
		Type:  el.Type,
		Value: el.Value,
	}
	if len(el.Options) > 0 {
		ctx.Options = make(kramdown.Options, len(el.Options))
		for k, v := range el.Options {
			ctx.Options[k] = v
		}
	}
	if len(el.Attr) > 0 {
		ctx.Attr = make(map[string]string, len(el.Attr))
		for k, v := range el.Attr {
			ctx.Attr[k] = v
		}
	}
	if len(el.Children) > 0 {
		ctx.Children = append([]*kramdown.Element(nil), el.Children...)
	}
	return ctx
}
