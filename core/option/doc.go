/*
Package option implements optional values and matching on them.

Optional values show up wherever a parsed document leaves a property unset,
e.g. the level of a header element. Clients match on an option instead of
checking for in-band null values themselves:

	tag, err := level.Match(option.Maybe{
	    option.None: option.Fail(errNoLevel),
	    option.Some: func(l interface{}) (interface{}, error) { … },
	})

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hexpress.core'.
func tracer() tracing.Trace {
	return tracing.Select("hexpress.core")
}
