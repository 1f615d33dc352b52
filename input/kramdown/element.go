package kramdown

import (
	"fmt"
	"strings"

	"github.com/npillmayer/hexpress/core/option"
)

// Type is the type tag of an element. The set of types is open: parsers and
// extensions may introduce tags not listed below.
type Type string

// Element types known from Kramdown.
const (
	Root        Type = "root"
	Blank       Type = "blank"
	Text        Type = "text"
	Header      Type = "header"
	P           Type = "p"
	Blockquote  Type = "blockquote"
	Codeblock   Type = "codeblock"
	Codespan    Type = "codespan"
	UL          Type = "ul"
	OL          Type = "ol"
	LI          Type = "li"
	Em          Type = "em"
	Strong      Type = "strong"
	A           Type = "a"
	Img         Type = "img"
	BR          Type = "br"
	HR          Type = "hr"
	HTMLElement Type = "html_element"
	XMLComment  Type = "xml_comment"
	Raw         Type = "raw"
	Table       Type = "table"
	THead       Type = "thead"
	TBody       Type = "tbody"
	TR          Type = "tr"
	TD          Type = "td"
	Del         Type = "del"
)

func (t Type) String() string {
	return string(t)
}

// Element is a node of a parsed document tree.
type Element struct {
	Type     Type              `yaml:"type"`
	Value    string            `yaml:"value,omitempty"`
	Attr     map[string]string `yaml:"attr,omitempty"`
	Children []*Element        `yaml:"children,omitempty"`
	Options  Options           `yaml:"options,omitempty"`
}

// Options holds auxiliary properties of an element.
type Options map[string]interface{}

// Option keys used by parsers.
const (
	OptLevel       = "level"       // header level, 1…6
	OptTransparent = "transparent" // paragraph without own markup, e.g. in tight lists
	OptCategory    = "category"    // "block" or "span"
)

// Level returns the header level of an element, if set.
func (opts Options) Level() option.Int64T {
	if opts == nil {
		return option.Int64()
	}
	return option.Int64FromValue(opts[OptLevel])
}

// Bool returns an option as a boolean flag. Unset options are false.
func (opts Options) Bool(key string) bool {
	b, ok := opts[key].(bool)
	return ok && b
}

// New creates an element of type t with the given children.
func New(t Type, children ...*Element) *Element {
	return &Element{Type: t, Children: children}
}

// Leaf creates a childless element of type t carrying value.
func Leaf(t Type, value string) *Element {
	return &Element{Type: t, Value: value}
}

// WithAttr sets an attribute and returns el, for chaining during tree construction.
func (el *Element) WithAttr(key, value string) *Element {
	if el.Attr == nil {
		el.Attr = make(map[string]string)
	}
	el.Attr[key] = value
	return el
}

// WithOption sets an option and returns el, for chaining during tree construction.
func (el *Element) WithOption(key string, value interface{}) *Element {
	if el.Options == nil {
		el.Options = make(Options)
	}
	el.Options[key] = value
	return el
}

// Append adds children to el and returns el.
func (el *Element) Append(children ...*Element) *Element {
	el.Children = append(el.Children, children...)
	return el
}

// String returns a one-line representation of el and its subtree, e.g.
//
//	p[text"Hello" em[text"World"]]
func (el *Element) String() string {
	if el == nil {
		return "<nil>"
	}
	var b strings.Builder
	el.writeTo(&b)
	return b.String()
}

func (el *Element) writeTo(b *strings.Builder) {
	b.WriteString(string(el.Type))
	if el.Value != "" {
		fmt.Fprintf(b, "%q", el.Value)
	}
	if len(el.Children) == 0 {
		return
	}
	b.WriteByte('[')
	for i, ch := range el.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		ch.writeTo(b)
	}
	b.WriteByte(']')
}

// --- Walking ---------------------------------------------------------------

// Walk visits el and its descendents in document order (pre-order). If fn
// returns false for an element, the element's children are skipped.
func Walk(el *Element, fn func(el *Element, depth int) bool) {
	walk(el, 0, fn)
}

func walk(el *Element, depth int, fn func(*Element, int) bool) {
	if el == nil || !fn(el, depth) {
		return
	}
	for _, ch := range el.Children {
		walk(ch, depth+1, fn)
	}
}

// Types counts the occurences of each element type within the tree rooted at el.
func Types(el *Element) map[Type]int {
	counts := make(map[Type]int)
	Walk(el, func(e *Element, _ int) bool {
		counts[e.Type]++
		return true
	})
	return counts
}
