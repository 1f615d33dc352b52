package xpathadapter

import (
	"errors"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/engine/hexp"
)

// step is an entry of the navigation path: an item and its index within
// the children of the item one step above.
type step struct {
	item  hexp.Item
	chinx int
}

// NodeNavigator navigates a markup tree for antchfx/xpath.
type NodeNavigator struct {
	root hexp.Item
	path []step // path[0] is the virtual document node
	attr int    // attributes index, -1 if not on an attribute
}

// NewNavigator creates a new xpath.NodeNavigator for a markup tree.
// The navigator starts at the virtual document node above root.
func NewNavigator(root hexp.Item) *NodeNavigator {
	return &NodeNavigator{
		root: root,
		path: []step{{item: nil, chinx: 0}},
		attr: -1,
	}
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// CurrentNode extracts the item a navigator is positioned on.
// For the document node it returns the root of the tree.
func CurrentNode(nav xpath.NodeNavigator) (hexp.Item, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.Current(), nil
}

// Current returns the item the navigator is positioned on.
func (nav *NodeNavigator) Current() hexp.Item {
	if nav.atDocument() {
		return nav.root
	}
	return nav.top().item
}

func (nav *NodeNavigator) atDocument() bool {
	return len(nav.path) == 1
}

func (nav *NodeNavigator) top() step {
	return nav.path[len(nav.path)-1]
}

func (nav *NodeNavigator) element() *hexp.Node {
	if nav.atDocument() {
		return nil
	}
	n, _ := nav.top().item.(*hexp.Node)
	return n
}

// childCount and childAt treat the document node as having exactly one
// child, the root of the tree.
func childCount(it hexp.Item, isDoc bool, root hexp.Item) int {
	if isDoc {
		if hexp.IsNil(root) {
			return 0
		}
		return 1
	}
	if n, ok := it.(*hexp.Node); ok && n != nil {
		return n.ChildCount()
	}
	return 0
}

func (nav *NodeNavigator) parentChild(i int) (hexp.Item, bool) {
	d := len(nav.path) - 2
	if d < 0 {
		return nil, false
	}
	if d == 0 {
		return nav.root, i == 0
	}
	parent, _ := nav.path[d].item.(*hexp.Node)
	if parent == nil || i < 0 || i >= parent.ChildCount() {
		return nil, false
	}
	return parent.Child(i), true
}

func (nav *NodeNavigator) parentChildCount() int {
	d := len(nav.path) - 2
	if d < 0 {
		return 0
	}
	return childCount(nav.path[d].item, d == 0, nav.root)
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.atDocument() {
		return xpath.RootNode
	}
	switch nav.top().item.(type) {
	case hexp.Text:
		return xpath.TextNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	n := nav.element()
	if n == nil {
		return ""
	}
	if nav.attr != -1 {
		return n.AttrList()[nav.attr].Key
	}
	return n.Tag()
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	switch it := nav.Current().(type) {
	case hexp.Text:
		return string(it)
	case *hexp.Node:
		if it == nil {
			return ""
		}
		if nav.attr != -1 && !nav.atDocument() {
			return it.AttrList()[nav.attr].Val
		}
		return it.Text()
	}
	return ""
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	n.path = append([]step(nil), nav.path...)
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.path = nav.path[:1]
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.atDocument() {
		return false
	}
	nav.path = nav.path[:len(nav.path)-1]
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	n := nav.element()
	if n == nil || nav.attr >= len(n.AttrList())-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	var first hexp.Item
	if nav.atDocument() {
		if hexp.IsNil(nav.root) {
			return false
		}
		first = nav.root
	} else {
		n := nav.element()
		if n == nil || n.ChildCount() == 0 {
			return false
		}
		first = n.Child(0)
	}
	nav.path = append(nav.path, step{item: first, chinx: 0})
	return true
}

func (nav *NodeNavigator) moveToSibling(i int) bool {
	if nav.attr != -1 || nav.atDocument() {
		return false
	}
	sibling, ok := nav.parentChild(i)
	if !ok {
		return false
	}
	nav.path[len(nav.path)-1] = step{item: sibling, chinx: i}
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.atDocument() || nav.top().chinx == 0 {
		return false
	}
	return nav.moveToSibling(0)
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.atDocument() {
		return false
	}
	i := nav.top().chinx + 1
	if i >= nav.parentChildCount() { // was last child of parent
		return false
	}
	return nav.moveToSibling(i)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.atDocument() || nav.top().chinx == 0 {
		return false
	}
	return nav.moveToSibling(nav.top().chinx - 1)
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || !sameRoot(n.root, nav.root) {
		return false
	}
	nav.path = append(nav.path[:0:0], n.path...)
	nav.attr = n.attr
	return true
}

func sameRoot(a, b hexp.Item) bool {
	na, oka := a.(*hexp.Node)
	nb, okb := b.(*hexp.Node)
	if oka && okb {
		return na == nb
	}
	return hexp.Equal(a, b)
}

// --- Queries ---------------------------------------------------------------

func compile(expr string) (*xpath.Expr, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		tracer().Errorf("invalid XPath expression %q", expr)
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	return x, nil
}

// Find returns the items of the tree rooted at root selected by an XPath
// expression, in document order. A selected attribute is reported as a text
// leaf holding its value.
func Find(root hexp.Item, expr string) ([]hexp.Item, error) {
	x, err := compile(expr)
	if err != nil {
		return nil, err
	}
	var result []hexp.Item
	iter := x.Select(NewNavigator(root))
	for iter.MoveNext() {
		nav := iter.Current().(*NodeNavigator)
		if nav.NodeType() == xpath.AttributeNode {
			result = append(result, hexp.Text(nav.Value()))
			continue
		}
		result = append(result, nav.Current())
	}
	tracer().Debugf("XPath %q selected %d items", expr, len(result))
	return result, nil
}

// FindOne returns the first item selected by expr, or nil.
func FindOne(root hexp.Item, expr string) (hexp.Item, error) {
	items, err := Find(root, expr)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return items[0], nil
}

// Evaluate evaluates an XPath expression returning a scalar, for example
// "count(//li)" or "string(//h1)".
func Evaluate(root hexp.Item, expr string) (interface{}, error) {
	x, err := compile(expr)
	if err != nil {
		return nil, err
	}
	v := x.Evaluate(NewNavigator(root))
	if _, ok := v.(*xpath.NodeIterator); ok {
		return nil, core.Error(core.EINVALID, "XPath expression %q does not evaluate to a scalar", expr)
	}
	return v, nil
}
