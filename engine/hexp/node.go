package hexp

import (
	"sort"
	"strconv"
	"strings"
)

// Item is an element of a markup tree: either a *Node or a Text leaf.
type Item interface {
	String() string
	isItem()
}

// Text is a text leaf. It is not escaped or interpreted in any way.
type Text string

func (Text) isItem() {}

func (t Text) String() string {
	return strconv.Quote(string(t))
}

// Attr is a single attribute of a node.
type Attr struct {
	Key, Val string
}

// Node is an immutable markup element.
type Node struct {
	tag      string
	attrs    []Attr // sorted by key
	children []Item
}

var _ Item = &Node{}
var _ Item = Text("")

func (*Node) isItem() {}

// H creates a node. The attribute map is copied; nil children are dropped.
func H(tag string, attrs map[string]string, children ...Item) *Node {
	n := &Node{tag: tag}
	if len(attrs) > 0 {
		n.attrs = make([]Attr, 0, len(attrs))
		for k, v := range attrs {
			n.attrs = append(n.attrs, Attr{Key: k, Val: v})
		}
		sort.Slice(n.attrs, func(i, j int) bool {
			return n.attrs[i].Key < n.attrs[j].Key
		})
	}
	n.children = compact(children)
	return n
}

// IsNil returns true if item is nil or a nil *Node.
func IsNil(item Item) bool {
	if item == nil {
		return true
	}
	n, ok := item.(*Node)
	return ok && n == nil
}

// compact copies a list of items, dropping nil entries.
func compact(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	c := make([]Item, 0, len(items))
	for _, item := range items {
		if !IsNil(item) {
			c = append(c, item)
		}
	}
	return c
}

// Tag returns the tag name of n.
func (n *Node) Tag() string {
	return n.tag
}

// Attr returns the value of attribute key.
func (n *Node) Attr(key string) (string, bool) {
	i := n.attrIndex(key)
	if i < 0 {
		return "", false
	}
	return n.attrs[i].Val, true
}

func (n *Node) attrIndex(key string) int {
	i := sort.Search(len(n.attrs), func(i int) bool {
		return n.attrs[i].Key >= key
	})
	if i < len(n.attrs) && n.attrs[i].Key == key {
		return i
	}
	return -1
}

// Attrs returns a copy of the attributes of n.
func (n *Node) Attrs() map[string]string {
	m := make(map[string]string, len(n.attrs))
	for _, a := range n.attrs {
		m[a.Key] = a.Val
	}
	return m
}

// AttrList returns the attributes of n, sorted by key.
func (n *Node) AttrList() []Attr {
	return append([]Attr(nil), n.attrs...)
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at position i, or nil if i is out of range.
func (n *Node) Child(i int) Item {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the children of n.
func (n *Node) Children() []Item {
	return append([]Item(nil), n.children...)
}

// Text returns the concatenated text leaves of the subtree rooted at n.
func (n *Node) Text() string {
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	for _, ch := range n.children {
		switch c := ch.(type) {
		case Text:
			b.WriteString(string(c))
		case *Node:
			c.collectText(b)
		}
	}
}

// --- Modifiers -------------------------------------------------------------

func (n *Node) clone() *Node {
	return &Node{
		tag:      n.tag,
		attrs:    n.attrs,
		children: n.children,
	}
}

// WithTag returns a copy of n with a different tag.
func (n *Node) WithTag(tag string) *Node {
	c := n.clone()
	c.tag = tag
	return c
}

// WithAttr returns a copy of n with attribute key set to val.
func (n *Node) WithAttr(key, val string) *Node {
	m := n.Attrs()
	m[key] = val
	return H(n.tag, m, n.children...)
}

// WithoutAttr returns a copy of n without attribute key.
func (n *Node) WithoutAttr(key string) *Node {
	if n.attrIndex(key) < 0 {
		return n
	}
	m := n.Attrs()
	delete(m, key)
	return H(n.tag, m, n.children...)
}

// WithChildren returns a copy of n with its children replaced.
func (n *Node) WithChildren(children ...Item) *Node {
	c := n.clone()
	c.children = compact(children)
	return c
}

// Append returns a copy of n with children added at the end.
func (n *Node) Append(children ...Item) *Node {
	all := make([]Item, 0, len(n.children)+len(children))
	all = append(all, n.children...)
	all = append(all, children...)
	return n.WithChildren(all...)
}

// Classes returns the entries of the class attribute.
func (n *Node) Classes() []string {
	cls, _ := n.Attr("class")
	return strings.Fields(cls)
}

// HasClass returns true if class is one of the entries of the class attribute.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass returns a copy of n with class added to the class attribute.
// If n already has the class, n is returned.
func (n *Node) AddClass(class string) *Node {
	if class == "" || n.HasClass(class) {
		return n
	}
	classes := append(n.Classes(), class)
	return n.WithAttr("class", strings.Join(classes, " "))
}

// --- Equality and inspection -----------------------------------------------

// Equal returns true if a and b are structurally equal: same tag, same
// attributes and pairwise equal children. Text leaves are equal if their
// strings are.
func Equal(a, b Item) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	switch x := a.(type) {
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case *Node:
		y, ok := b.(*Node)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		if x.tag != y.tag || len(x.attrs) != len(y.attrs) || len(x.children) != len(y.children) {
			return false
		}
		for i := range x.attrs {
			if x.attrs[i] != y.attrs[i] {
				return false
			}
		}
		for i := range x.children {
			if !Equal(x.children[i], y.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal is a shortcut for Equal(n, other).
func (n *Node) Equal(other Item) bool {
	return Equal(n, other)
}

// String returns a compact representation of the subtree rooted at n, e.g.
//
//	p{class="lead"}["Chunky ", em["bacon"]]
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	b.WriteString(n.tag)
	if len(n.attrs) > 0 {
		b.WriteByte('{')
		for i, a := range n.attrs {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(a.Key)
			b.WriteByte('=')
			b.WriteString(strconv.Quote(a.Val))
		}
		b.WriteByte('}')
	}
	if len(n.children) == 0 {
		return
	}
	b.WriteByte('[')
	for i, ch := range n.children {
		if i > 0 {
			b.WriteString(", ")
		}
		switch c := ch.(type) {
		case *Node:
			c.writeTo(b)
		default:
			b.WriteString(c.String())
		}
	}
	b.WriteByte(']')
}
