package xpathadapter

import (
	"testing"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/engine/hexp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDoc() *hexp.Node {
	return hexp.H("html", nil, hexp.H("body", nil,
		hexp.H("h1", map[string]string{"id": "hello"}, hexp.Text("Hello!")),
		hexp.H("p", nil, hexp.Text("Chunky "), hexp.H("code", nil, hexp.Text("bacon"))),
		hexp.H("ul", map[string]string{"class": "list"},
			hexp.H("li", nil, hexp.Text("one")),
			hexp.H("li", nil, hexp.Text("two")),
			hexp.H("li", nil, hexp.Text("three")),
		),
	))
}

func TestNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.xpath")
	defer teardown()
	//
	doc := buildDoc()
	nav := NewNavigator(doc)
	assert.Equal(t, xpath.RootNode, nav.NodeType())
	require.True(t, nav.MoveToChild())
	assert.Equal(t, "html", nav.LocalName())
	assert.False(t, nav.MoveToNext())
	require.True(t, nav.MoveToChild()) // body
	require.True(t, nav.MoveToChild()) // h1
	assert.Equal(t, "h1", nav.LocalName())
	require.True(t, nav.MoveToNextAttribute())
	assert.Equal(t, xpath.AttributeNode, nav.NodeType())
	assert.Equal(t, "id", nav.LocalName())
	assert.Equal(t, "hello", nav.Value())
	assert.False(t, nav.MoveToNextAttribute())
	require.True(t, nav.MoveToParent())
	assert.Equal(t, xpath.ElementNode, nav.NodeType())
	require.True(t, nav.MoveToNext())
	require.True(t, nav.MoveToNext())
	assert.Equal(t, "ul", nav.LocalName())
	assert.False(t, nav.MoveToNext())
	cp := nav.Copy()
	require.True(t, nav.MoveToPrevious())
	assert.Equal(t, "p", nav.LocalName())
	assert.Equal(t, "Chunky bacon", nav.Value())
	assert.Equal(t, "ul", cp.LocalName(), "copy must not follow the original")
	require.True(t, nav.MoveToFirst())
	assert.Equal(t, "h1", nav.LocalName())
	require.True(t, nav.MoveToChild())
	assert.Equal(t, xpath.TextNode, nav.NodeType())
	assert.Equal(t, "Hello!", nav.Value())
	assert.False(t, nav.MoveToChild())
	require.True(t, nav.MoveTo(cp))
	assert.Equal(t, "ul", nav.LocalName())
	nav.MoveToRoot()
	assert.Equal(t, xpath.RootNode, nav.NodeType())
	assert.False(t, nav.MoveToParent())
	assert.False(t, nav.MoveTo(NewNavigator(buildDoc())))
	//
	item, err := CurrentNode(cp)
	require.NoError(t, err)
	assert.Equal(t, "ul", item.(*hexp.Node).Tag())
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.xpath")
	defer teardown()
	//
	doc := buildDoc()
	items, err := Find(doc, "//li")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "three", items[2].(*hexp.Node).Text())
	//
	items, err = Find(doc, "/html/body/ul/li[2]/text()")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, hexp.Text("two"), items[0])
	//
	items, err = Find(doc, "//h1/@id")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, hexp.Text("hello"), items[0])
	//
	item, err := FindOne(doc, "//ul[@class='list']")
	require.NoError(t, err)
	body := doc.Child(0).(*hexp.Node)
	assert.Same(t, body.Child(2), item)
	//
	item, err = FindOne(doc, "//table")
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.xpath")
	defer teardown()
	//
	doc := buildDoc()
	v, err := Evaluate(doc, "count(//li)")
	require.NoError(t, err)
	assert.Equal(t, float64(3), v)
	v, err = Evaluate(doc, "string(//h1)")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", v)
	_, err = Evaluate(doc, "//li")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Find(doc, "//li[")
	assert.Equal(t, core.EINVALID, core.Code(err))
}
