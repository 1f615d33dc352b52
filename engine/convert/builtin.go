package convert

import (
	"fmt"

	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/core/option"
	"github.com/npillmayer/hexpress/engine/hexp"
)

// RootRule wraps the converted children of a document root into
// html > body. Attributes of the root are carried by body.
func RootRule() Rule {
	return RuleFunc(func(c *Converter, ctx Context) (hexp.Item, error) {
		body, err := c.Tag("body", ctx)
		if err != nil {
			return nil, err
		}
		return hexp.H("html", nil, body), nil
	})
}

// HeaderRule creates h1, h2, … elements, according to option "level".
// A header without a level is an error.
func HeaderRule() Rule {
	return RuleFunc(func(c *Converter, ctx Context) (hexp.Item, error) {
		tag, err := ctx.Options.Level().Match(option.Maybe{
			option.None: option.Fail(core.Error(core.EINVALID, "header element without level")),
			option.Some: func(level interface{}) (interface{}, error) {
				return fmt.Sprintf("h%d", level.(option.Int64T).Unwrap()), nil
			},
		})
		if err != nil {
			tracer().Errorf("header: %v", err)
			return nil, err
		}
		return c.Tag(tag.(string), ctx)
	})
}

// CodeblockRule creates pre > code with the element's value as literal text.
// Attributes go to the pre element.
func CodeblockRule() Rule {
	return RuleFunc(func(c *Converter, ctx Context) (hexp.Item, error) {
		return hexp.H("pre", ctx.Attr, hexp.H("code", nil, hexp.Text(ctx.Value))), nil
	})
}

// PassthroughRule creates an element named like the element's type.
func PassthroughRule() Rule {
	return RuleFunc(func(c *Converter, ctx Context) (hexp.Item, error) {
		return c.Tag(string(ctx.Type), ctx)
	})
}

// TextRule creates a text leaf from the element's value.
func TextRule() Rule {
	return RuleFunc(func(c *Converter, ctx Context) (hexp.Item, error) {
		return hexp.Text(ctx.Value), nil
	})
}

// TagRule creates elements with a fixed tag name, with attributes and
// converted children.
func TagRule(tag string) Rule {
	return RuleFunc(func(c *Converter, ctx Context) (hexp.Item, error) {
		return c.Tag(tag, ctx)
	})
}

// Omit produces no output, whatever the element.
func Omit() Rule {
	return RuleFunc(func(*Converter, Context) (hexp.Item, error) {
		return nil, nil
	})
}
