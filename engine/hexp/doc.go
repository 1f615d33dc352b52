/*
Package hexp implements immutable markup trees.

A tree is made of nodes, each with a tag name, a set of attributes and an
ordered list of children. Children are either nodes or text leaves. Trees are
never modified in place: all modifiers return a new node, sharing unchanged
subtrees with the original.

	doc := hexp.H("p", map[string]string{"class": "lead"},
	    hexp.Text("Chunky "),
	    hexp.H("em", nil, hexp.Text("bacon")),
	)

The name follows the Ruby library Hexp ("HTML expressions"), which models
HTML as plain data in the same way.

Serialization to HTML is delegated to golang.org/x/net/html, see Render.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hexp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hexpress.hexp'.
func tracer() tracing.Trace {
	return tracing.Select("hexpress.hexp")
}
