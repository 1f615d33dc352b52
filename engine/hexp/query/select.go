package query

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/engine/hexp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// mirror is an HTML parse tree built from a markup tree, together with the
// way back from HTML nodes to markup nodes.
type mirror struct {
	root  *html.Node
	nodes map[*html.Node]*hexp.Node
}

func newMirror(root hexp.Item) *mirror {
	m := &mirror{nodes: make(map[*html.Node]*hexp.Node)}
	m.root = m.build(root)
	return m
}

// mirrored is true for items which build creates an HTML node for.
func mirrored(item hexp.Item) bool {
	switch it := item.(type) {
	case hexp.Text:
		return true
	case *hexp.Node:
		return it != nil
	}
	return false
}

func (m *mirror) build(item hexp.Item) *html.Node {
	switch it := item.(type) {
	case hexp.Text:
		return &html.Node{Type: html.TextNode, Data: string(it)}
	case *hexp.Node:
		if it == nil {
			return nil
		}
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     it.Tag(),
			DataAtom: atom.Lookup([]byte(it.Tag())),
		}
		for _, a := range it.AttrList() {
			h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		for i := 0; i < it.ChildCount(); i++ {
			if ch := m.build(it.Child(i)); ch != nil {
				h.AppendChild(ch)
			}
		}
		m.nodes[h] = it
		return h
	}
	return nil
}

func compile(sel string) (cascadia.Selector, error) {
	s, err := cascadia.Compile(sel)
	if err != nil {
		tracer().Errorf("invalid selector %q", sel)
		return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", sel)
	}
	return s, nil
}

// Select returns all nodes of the tree rooted at root which match the CSS
// selector sel, in document order. root itself is a candidate.
func Select(root hexp.Item, sel string) ([]*hexp.Node, error) {
	s, err := compile(sel)
	if err != nil {
		return nil, err
	}
	m := newMirror(root)
	var result []*hexp.Node
	for _, h := range m.match(s) {
		result = append(result, m.nodes[h])
	}
	tracer().Debugf("selector %q matched %d nodes", sel, len(result))
	return result, nil
}

// match returns the mirrored nodes matching s, in document order, including
// the root.
func (m *mirror) match(s cascadia.Selector) []*html.Node {
	if m.root == nil || m.root.Type != html.ElementNode {
		return nil
	}
	var hits []*html.Node
	if s.Match(m.root) {
		hits = append(hits, m.root)
	}
	for _, h := range s.MatchAll(m.root) {
		if h != m.root {
			hits = append(hits, h)
		}
	}
	return hits
}

// First returns the first node matching sel, or nil.
func First(root hexp.Item, sel string) (*hexp.Node, error) {
	nodes, err := Select(root, sel)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], nil
}
