/*
Package extended provides conversion rules for the Kramdown vocabulary
beyond the core set of package convert.

	c := convert.New(convert.WithTable(extended.Table()))

Emphasis, lists, tables and breaks are converted to the HTML elements of the
same name. Links and images keep their attributes. Comments and raw content
are dropped from the output. HTML elements found in the source keep their
tag name, which Kramdown stores as the element's value.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package extended

import (
	"strings"

	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/engine/convert"
	"github.com/npillmayer/hexpress/engine/hexp"
	"github.com/npillmayer/hexpress/input/kramdown"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hexpress.convert'.
func tracer() tracing.Trace {
	return tracing.Select("hexpress.convert")
}

var passthrough = []kramdown.Type{
	kramdown.Em, kramdown.Strong, kramdown.Del, kramdown.OL,
	kramdown.BR, kramdown.HR,
	kramdown.Table, kramdown.THead, kramdown.TBody, kramdown.TR, kramdown.TD,
}

var dropped = []kramdown.Type{kramdown.XMLComment, kramdown.Raw}

// PassthroughTypes lists the types converted to an element of the same name.
// The result is a fresh slice on every call.
func PassthroughTypes() []kramdown.Type {
	return append([]kramdown.Type(nil), passthrough...)
}

// DroppedTypes lists the types which produce no output.
// The result is a fresh slice on every call.
func DroppedTypes() []kramdown.Type {
	return append([]kramdown.Type(nil), dropped...)
}

// Register adds the extended rules to table and returns it.
func Register(table *convert.Table) *convert.Table {
	table.Register(convert.PassthroughRule(), passthrough...)
	table.Register(convert.Omit(), dropped...)
	table.Register(LinkRule(), kramdown.A)
	table.Register(ImageRule(), kramdown.Img)
	table.Register(HTMLElementRule(), kramdown.HTMLElement)
	return table
}

// Table creates a table holding the default rules plus the extended ones.
func Table() *convert.Table {
	return Register(convert.DefaultTable())
}

// LinkRule creates an anchor. Attributes href and title are taken over
// from the source element.
func LinkRule() convert.Rule {
	return convert.RuleFunc(func(c *convert.Converter, ctx convert.Context) (hexp.Item, error) {
		return c.Tag("a", ctx)
	})
}

// ImageRule creates an img element. Images have no content, children of the
// source element are ignored.
func ImageRule() convert.Rule {
	return convert.RuleFunc(func(c *convert.Converter, ctx convert.Context) (hexp.Item, error) {
		return hexp.H("img", ctx.Attr), nil
	})
}

// HTMLElementRule creates an element named by the source element's value.
func HTMLElementRule() convert.Rule {
	return convert.RuleFunc(func(c *convert.Converter, ctx convert.Context) (hexp.Item, error) {
		tag := strings.ToLower(strings.TrimSpace(ctx.Value))
		if tag == "" {
			tracer().Errorf("HTML element without tag name")
			return nil, core.Error(core.EINVALID, "html_element without tag name")
		}
		return c.Tag(tag, ctx)
	})
}
