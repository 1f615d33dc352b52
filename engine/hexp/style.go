package hexp

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Styles parses the inline style attribute of n into CSS declarations.
// A node without a style attribute has no declarations.
func (n *Node) Styles() ([]*css.Declaration, error) {
	style, ok := n.Attr("style")
	if !ok || strings.TrimSpace(style) == "" {
		return nil, nil
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		tracer().Errorf("cannot parse style of <%s>: %v", n.tag, err)
		return nil, err
	}
	return decls, nil
}

// Style returns the value of a single inline style property.
func (n *Node) Style(property string) (string, bool) {
	decls, err := n.Styles()
	if err != nil {
		return "", false
	}
	value, found := "", false
	for _, d := range decls { // later declarations win
		if d.Property == property {
			value, found = d.Value, true
		}
	}
	return value, found
}
