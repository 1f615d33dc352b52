/*
Package convert translates Kramdown-style document trees into markup trees.

Conversion is driven by a dispatch table, which maps element type tags to
rules. A rule receives a conversion context, holding the type, value,
attributes, children and options of a source element, and produces a
markup item. Rules for container elements call back into the converter to
convert their children:

	c := convert.New()
	doc, err := c.Convert(root)   // root is a *kramdown.Element of type "root"

The default table handles the core Kramdown vocabulary:

	root                  →  html > body (root attributes) > (children)
	header                →  h<level> (attrs, children)
	codeblock             →  pre (attrs) > code > value
	p, blockquote, ul, li →  element with the same name (attrs, children)
	text, codespan, blank →  text leaf holding the value

Elements of any other type make conversion fail with an
UnsupportedNodeTypeError. Clients may register additional rules, or
replace existing ones, before the first conversion:

	table := convert.DefaultTable().Register(myRule, "em", "strong")
	c := convert.New(convert.WithTable(table))

A rule may return nil to suppress output for an element. Nil results are
dropped from the list of converted children.

A converter keeps no state between calls, but tables must not be modified
while conversions are running.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package convert

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hexpress.convert'.
func tracer() tracing.Trace {
	return tracing.Select("hexpress.convert")
}
