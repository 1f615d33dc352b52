/*
Package markdown creates Kramdown-style element trees from Markdown text.

Parsing is done by github.com/yuin/goldmark. This package walks goldmark's
syntax tree and maps every node to a kramdown.Element, using the type tags
Kramdown uses for the same constructs:

	root, err := markdown.Parse([]byte("# Hello!\n\nChunky `bacon`!\n"))
	// root[header[text"Hello!"] blank"\n" p[text"Chunky " codespan"bacon" text"!"]]

Node kinds without a Kramdown counterpart keep goldmark's kind name as their
type tag. Converters will usually reject them, unless a rule for them has
been registered.

Goldmark extensions are selected by name, see Config.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hexpress.input'.
func tracer() tracing.Trace {
	return tracing.Select("hexpress.input")
}
