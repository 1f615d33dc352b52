package query

import (
	"testing"

	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/engine/hexp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *hexp.Node {
	return hexp.H("html", nil, hexp.H("body", nil,
		hexp.H("h1", map[string]string{"id": "hello"}, hexp.Text("Hello!")),
		hexp.H("p", map[string]string{"class": "lead"}, hexp.Text("Chunky "), hexp.H("em", nil, hexp.Text("bacon"))),
		hexp.H("ul", nil,
			hexp.H("li", nil, hexp.Text("one")),
			hexp.H("li", nil, hexp.Text("two")),
		),
		hexp.H("pre", nil, hexp.H("code", nil, hexp.Text("puts 1"))),
	))
}

func TestSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.query")
	defer teardown()
	//
	doc := sample()
	items, err := Select(doc, "ul > li")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Text())
	assert.Equal(t, "two", items[1].Text())
	//
	body := doc.Child(0).(*hexp.Node)
	items, err = Select(doc, "p.lead")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Same(t, body.Child(1), items[0])
	//
	items, err = Select(doc, "html")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Same(t, doc, items[0])
	//
	n, err := First(doc, "#hello")
	require.NoError(t, err)
	assert.Equal(t, "h1", n.Tag())
	n, err = First(doc, "table")
	assert.NoError(t, err)
	assert.Nil(t, n)
}

func TestSelectInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.query")
	defer teardown()
	//
	_, err := Select(sample(), "p[")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	items, err := Select(hexp.Text("plain"), "p")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.query")
	defer teardown()
	//
	doc := sample()
	before := doc.String()
	r, err := Replace(doc, "li", func(n *hexp.Node) hexp.Item {
		return n.AddClass("item")
	})
	require.NoError(t, err)
	assert.Equal(t, before, doc.String(), "original tree must not change")
	items, err := Select(r, "li.item")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	// untouched subtrees are shared
	oldBody := doc.Child(0).(*hexp.Node)
	newBody := r.(*hexp.Node).Child(0).(*hexp.Node)
	assert.Same(t, oldBody.Child(0), newBody.Child(0))
	assert.NotSame(t, oldBody.Child(2), newBody.Child(2))
}

func TestRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.query")
	defer teardown()
	//
	doc := sample()
	r, err := Remove(doc, "em, pre")
	require.NoError(t, err)
	assert.Equal(t,
		`html[body[h1{id="hello"}["Hello!"], p{class="lead"}["Chunky "], ul[li["one"], li["two"]]]]`,
		r.String())
	r, err = Remove(doc, "table")
	require.NoError(t, err)
	assert.Same(t, doc, r)
}

func TestReplaceSharedSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.query")
	defer teardown()
	//
	li := hexp.H("li", nil, hexp.Text("x"))
	ul := hexp.H("ul", nil, li, li)
	items, err := Select(ul, "li:first-child")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	r, err := Remove(ul, "li:first-child")
	require.NoError(t, err)
	assert.Equal(t, `ul[li["x"]]`, r.String())
	r, err = Replace(ul, "li:last-child", func(n *hexp.Node) hexp.Item {
		return n.AddClass("last")
	})
	require.NoError(t, err)
	assert.Equal(t, `ul[li["x"], li{class="last"}["x"]]`, r.String())
	assert.Same(t, li, r.(*hexp.Node).Child(0))
	assert.Equal(t, `ul[li["x"], li["x"]]`, ul.String())
}
