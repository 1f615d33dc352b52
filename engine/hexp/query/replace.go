package query

import (
	"github.com/npillmayer/hexpress/engine/hexp"
	"golang.org/x/net/html"
)

// Replace returns a copy of the tree rooted at root in which every node
// matching sel has been substituted by fn(node). If fn returns nil, the node
// is removed. Replacements are not searched for further matches.
//
// Matches are positions in the tree, not nodes: a node shared at several
// positions is substituted only where it matches.
// Subtrees without any match are shared between root and the result.
func Replace(root hexp.Item, sel string, fn func(*hexp.Node) hexp.Item) (hexp.Item, error) {
	s, err := compile(sel)
	if err != nil {
		return nil, err
	}
	m := newMirror(root)
	matches := m.match(s)
	tracer().Debugf("selector %q matched %d positions", sel, len(matches))
	if len(matches) == 0 {
		return root, nil
	}
	hits := make(map[*html.Node]struct{}, len(matches))
	for _, h := range matches {
		hits[h] = struct{}{}
	}
	r, _ := m.rebuild(root, m.root, hits, fn)
	return r, nil
}

// rebuild returns the substituted version of item, mirrored by h, and a flag
// telling if anything changed.
func (m *mirror) rebuild(item hexp.Item, h *html.Node, hits map[*html.Node]struct{},
	fn func(*hexp.Node) hexp.Item) (hexp.Item, bool) {
	//
	n, ok := item.(*hexp.Node)
	if !ok || n == nil || h == nil {
		return item, false
	}
	if _, hit := hits[h]; hit {
		return fn(n), true
	}
	changed := false
	children := make([]hexp.Item, n.ChildCount())
	hc := h.FirstChild
	for i := range children {
		ch := n.Child(i)
		if !mirrored(ch) {
			children[i] = ch
			continue
		}
		var c bool
		children[i], c = m.rebuild(ch, hc, hits, fn)
		changed = changed || c
		hc = hc.NextSibling
	}
	if !changed {
		return n, false
	}
	return n.WithChildren(children...), true
}

// Remove returns a copy of the tree rooted at root without the nodes matching sel.
func Remove(root hexp.Item, sel string) (hexp.Item, error) {
	return Replace(root, sel, func(*hexp.Node) hexp.Item { return nil })
}
