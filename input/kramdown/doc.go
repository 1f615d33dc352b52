/*
Package kramdown holds the element tree of a parsed lightweight-markup document.

The element model follows the one of the Kramdown Ruby gem: every element has a
type tag, an optional raw value, attributes, ordered children and a map of
auxiliary options (e.g., the level of a header). Trees are produced by a parser
(see package input/markdown) or decoded from YAML, and are treated read-only by
all consumers.

A YAML document for a small tree looks like this:

	type: root
	children:
	  - type: header
	    options: { level: 1 }
	    children:
	      - { type: text, value: Hello }
	  - type: p
	    attr: { class: lead }
	    children:
	      - { type: text, value: "Chunky " }
	      - { type: codespan, value: bacon }

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package kramdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hexpress.input'.
func tracer() tracing.Trace {
	return tracing.Select("hexpress.input")
}
