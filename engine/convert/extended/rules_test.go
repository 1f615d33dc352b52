package extended

import (
	"testing"

	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/engine/convert"
	"github.com/npillmayer/hexpress/engine/hexp"
	"github.com/npillmayer/hexpress/input/kramdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) *kramdown.Element {
	return kramdown.Leaf(kramdown.Text, s)
}

func TestInlineElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.convert")
	defer teardown()
	//
	c := convert.New(convert.WithTable(Table()))
	p := kramdown.New(kramdown.P,
		kramdown.New(kramdown.Em, text("a")),
		kramdown.New(kramdown.Strong, text("b")),
		kramdown.New(kramdown.Del, text("c")),
		kramdown.New(kramdown.BR),
		kramdown.New(kramdown.A, text("link")).
			WithAttr("href", "https://example.com").WithAttr("title", "T"),
		kramdown.New(kramdown.Img, text("ignored")).
			WithAttr("src", "x.png").WithAttr("alt", "X"),
	)
	item, err := c.Convert(p)
	require.NoError(t, err)
	s, err := hexp.HTML(item)
	require.NoError(t, err)
	assert.Equal(t, `<p><em>a</em><strong>b</strong><del>c</del><br/>`+
		`<a href="https://example.com" title="T">link</a><img alt="X" src="x.png"/></p>`, s)
}

func TestDroppedElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.convert")
	defer teardown()
	//
	c := convert.New(convert.WithTable(Table()))
	root := kramdown.New(kramdown.Root,
		kramdown.Leaf(kramdown.XMLComment, "<!-- note -->"),
		kramdown.New(kramdown.P, text("visible")),
		kramdown.Leaf(kramdown.Raw, "\\relax"),
	)
	item, err := c.Convert(root)
	require.NoError(t, err)
	assert.Equal(t, `html[body[p["visible"]]]`, item.String())
}

func TestTablesAndLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.convert")
	defer teardown()
	//
	c := convert.New(convert.WithTable(Table()))
	tbl := kramdown.New(kramdown.Table,
		kramdown.New(kramdown.THead, kramdown.New(kramdown.TR, kramdown.New(kramdown.TD, text("h")))),
		kramdown.New(kramdown.TBody, kramdown.New(kramdown.TR, kramdown.New(kramdown.TD, text("d")))),
	)
	item, err := c.Convert(tbl)
	require.NoError(t, err)
	assert.Equal(t, `table[thead[tr[td["h"]]], tbody[tr[td["d"]]]]`, item.String())
	//
	ol := kramdown.New(kramdown.OL, kramdown.New(kramdown.LI, text("1")), kramdown.New(kramdown.HR))
	item, err = c.Convert(ol)
	require.NoError(t, err)
	assert.Equal(t, `ol[li["1"], hr]`, item.String())
}

func TestHTMLElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hexpress.convert")
	defer teardown()
	//
	c := convert.New(convert.WithTable(Table()))
	div := kramdown.Leaf(kramdown.HTMLElement, "DIV").WithAttr("class", "note")
	div.Append(kramdown.New(kramdown.P, text("x")))
	item, err := c.Convert(div)
	require.NoError(t, err)
	assert.Equal(t, `div{class="note"}[p["x"]]`, item.String())
	//
	_, err = c.Convert(kramdown.New(kramdown.HTMLElement))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestRegisterKeepsCoreRules(t *testing.T) {
	table := Table()
	for _, typ := range convert.DefaultTable().Types() {
		assert.True(t, table.Supports(typ), "missing core rule for %s", typ)
	}
	assert.Equal(t, convert.DefaultTable().Size()+len(PassthroughTypes())+len(DroppedTypes())+3, table.Size())
}

func TestTypeListsAreCopies(t *testing.T) {
	types := PassthroughTypes()
	require.Contains(t, types, kramdown.Em)
	types[0] = kramdown.Type("wobble")
	gone := DroppedTypes()
	gone[0] = kramdown.Em
	assert.Equal(t, kramdown.Em, PassthroughTypes()[0])
	assert.Equal(t, kramdown.XMLComment, DroppedTypes()[0])
	table := Table()
	assert.False(t, table.Supports(kramdown.Type("wobble")))
	item, err := convert.New(convert.WithTable(table)).Convert(kramdown.Leaf(kramdown.XMLComment, "<!-- x -->"))
	assert.NoError(t, err)
	assert.Nil(t, item)
}
