/*
Package query selects and rewrites nodes of markup trees with CSS selectors.

Selectors are compiled with andybalholm/cascadia and matched against a
golang.org/x/net/html mirror of the tree. Matches are reported as the original
hexp nodes, so the results may be compared by identity:

	nodes, err := query.Select(doc, "ul > li")

Replace creates a new tree where every matching node is substituted by the
result of a function. The original tree is left untouched.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hexpress.query'.
func tracer() tracing.Trace {
	return tracing.Select("hexpress.query")
}
