package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/hexpress/core"
	"github.com/npillmayer/hexpress/input/kramdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Parser creates element trees from Markdown. A parser may be used for any
// number of documents, also concurrently.
type Parser struct {
	md     goldmark.Markdown
	config Config
}

// NewParser creates a parser for the Markdown dialect described by config.
func NewParser(config Config) *Parser {
	var popts []parser.Option
	if config.AutoHeadingID {
		popts = append(popts, parser.WithAutoHeadingID())
	}
	opts := []goldmark.Option{goldmark.WithParserOptions(popts...)}
	if exts := collectExtensions(config.Extensions); len(exts) > 0 {
		opts = append(opts, goldmark.WithExtensions(exts...))
	}
	return &Parser{md: goldmark.New(opts...), config: config}
}

var defaultParser = NewParser(DefaultConfig())

// Parse parses src with the default configuration.
func Parse(src []byte) (*kramdown.Element, error) {
	return defaultParser.Parse(src)
}

// ParseReader reads Markdown from r and parses it with the default
// configuration.
func ParseReader(r io.Reader) (*kramdown.Element, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read Markdown source")
	}
	return Parse(src)
}

// Parse parses src and returns the root element of the document.
func (p *Parser) Parse(src []byte) (*kramdown.Element, error) {
	doc := p.md.Parser().Parse(text.NewReader(src))
	b := builder{src: src, config: p.config}
	els, err := b.node(doc)
	if err != nil {
		tracer().Errorf("cannot map Markdown syntax tree: %v", err)
		return nil, err
	}
	if len(els) != 1 || els[0].Type != kramdown.Root {
		return nil, core.Error(core.EINTERNAL, "Markdown document did not produce a root element")
	}
	tracer().Debugf("parsed Markdown into %d elements", countElements(els[0]))
	return els[0], nil
}

func countElements(root *kramdown.Element) int {
	n := 0
	kramdown.Walk(root, func(*kramdown.Element, int) bool {
		n++
		return true
	})
	return n
}

// builder maps goldmark nodes to elements.
type builder struct {
	src    []byte
	config Config
}

// node maps n and its subtree. The result is a list, as some nodes are
// spliced into their parent (text blocks) or produce more than one element
// (text with a hard line break).
func (b *builder) node(n ast.Node) ([]*kramdown.Element, error) {
	switch n.Kind() {
	case ast.KindDocument:
		return b.container(kramdown.Root, n)
	case ast.KindHeading:
		h := n.(*ast.Heading)
		return b.container(kramdown.Header, n, withLevel(h.Level))
	case ast.KindParagraph:
		return b.container(kramdown.P, n)
	case ast.KindTextBlock:
		return b.children(n)
	case ast.KindBlockquote:
		return b.container(kramdown.Blockquote, n)
	case ast.KindList:
		if n.(*ast.List).IsOrdered() {
			return b.container(kramdown.OL, n)
		}
		return b.container(kramdown.UL, n)
	case ast.KindListItem:
		return b.container(kramdown.LI, n)
	case ast.KindText:
		return b.text(n.(*ast.Text)), nil
	case ast.KindString:
		return single(kramdown.Leaf(kramdown.Text, string(n.(*ast.String).Value))), nil
	case ast.KindCodeSpan:
		return single(kramdown.Leaf(kramdown.Codespan, b.plainText(n))), nil
	case ast.KindFencedCodeBlock:
		fcb := n.(*ast.FencedCodeBlock)
		el := kramdown.Leaf(kramdown.Codeblock, b.lines(n))
		if lang := fcb.Language(b.src); len(lang) > 0 {
			el.WithAttr("class", "language-"+string(lang))
		}
		return single(el), nil
	case ast.KindCodeBlock:
		return single(kramdown.Leaf(kramdown.Codeblock, b.lines(n))), nil
	case ast.KindEmphasis:
		if n.(*ast.Emphasis).Level >= 2 {
			return b.container(kramdown.Strong, n)
		}
		return b.container(kramdown.Em, n)
	case ast.KindLink:
		link := n.(*ast.Link)
		return b.container(kramdown.A, n, func(el *kramdown.Element) {
			el.WithAttr("href", string(link.Destination))
			if len(link.Title) > 0 {
				el.WithAttr("title", string(link.Title))
			}
		})
	case ast.KindAutoLink:
		return single(b.autoLink(n.(*ast.AutoLink))), nil
	case ast.KindImage:
		img := n.(*ast.Image)
		el := kramdown.New(kramdown.Img).
			WithAttr("src", string(img.Destination)).
			WithAttr("alt", b.plainText(n))
		if len(img.Title) > 0 {
			el.WithAttr("title", string(img.Title))
		}
		return single(el), nil
	case ast.KindThematicBreak:
		return single(kramdown.New(kramdown.HR)), nil
	case ast.KindHTMLBlock:
		hb := n.(*ast.HTMLBlock)
		content := b.lines(n)
		if hb.HasClosure() {
			content += string(hb.ClosureLine.Value(b.src))
		}
		return single(htmlContent(content, "block")), nil
	case ast.KindRawHTML:
		raw := n.(*ast.RawHTML)
		var buf bytes.Buffer
		for i := 0; i < raw.Segments.Len(); i++ {
			seg := raw.Segments.At(i)
			buf.Write(seg.Value(b.src))
		}
		return single(htmlContent(buf.String(), "span")), nil
	case east.KindStrikethrough:
		return b.container(kramdown.Del, n)
	case east.KindTable:
		return b.table(n)
	case east.KindTableCell:
		return b.container(kramdown.TD, n, withAlignment(n.(*east.TableCell).Alignment))
	case east.KindTableRow:
		return b.container(kramdown.TR, n)
	case east.KindTaskCheckBox:
		box := kramdown.Leaf(kramdown.HTMLElement, "input").
			WithAttr("type", "checkbox").
			WithAttr("disabled", "")
		if n.(*east.TaskCheckBox).IsChecked {
			box.WithAttr("checked", "")
		}
		return single(box), nil
	}
	tracer().Infof("no element type for Markdown node %s", n.Kind())
	return b.container(kramdown.Type(n.Kind().String()), n)
}

func single(el *kramdown.Element) []*kramdown.Element {
	return []*kramdown.Element{el}
}

func withLevel(level int) func(*kramdown.Element) {
	return func(el *kramdown.Element) {
		el.WithOption(kramdown.OptLevel, level)
	}
}

func withAlignment(a east.Alignment) func(*kramdown.Element) {
	return func(el *kramdown.Element) {
		if a != east.AlignNone {
			el.WithAttr("style", "text-align: "+a.String())
		}
	}
}

// container creates an element of type t holding the mapped children of n.
func (b *builder) container(t kramdown.Type, n ast.Node, setup ...func(*kramdown.Element)) ([]*kramdown.Element, error) {
	el := kramdown.New(t)
	b.attributes(el, n)
	for _, f := range setup {
		f(el)
	}
	children, err := b.children(n)
	if err != nil {
		return nil, err
	}
	el.Children = children
	return single(el), nil
}

// children maps the children of n. Adjacent text elements are merged.
func (b *builder) children(n ast.Node) ([]*kramdown.Element, error) {
	var els []*kramdown.Element
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if b.config.Blanks && c.Type() == ast.TypeBlock && c.HasBlankPreviousLines() {
			els = append(els, kramdown.Leaf(kramdown.Blank, "\n"))
		}
		mapped, err := b.node(c)
		if err != nil {
			return nil, err
		}
		els = appendMerged(els, mapped...)
	}
	return els, nil
}

func appendMerged(list []*kramdown.Element, els ...*kramdown.Element) []*kramdown.Element {
	for _, el := range els {
		if n := len(list); n > 0 && el.Type == kramdown.Text && list[n-1].Type == kramdown.Text {
			list[n-1].Value += el.Value
			continue
		}
		list = append(list, el)
	}
	return list
}

// attributes copies the attributes goldmark collected for n, e.g. header IDs.
func (b *builder) attributes(el *kramdown.Element, n ast.Node) {
	for _, a := range n.Attributes() {
		var v string
		switch val := a.Value.(type) {
		case []byte:
			v = string(val)
		case string:
			v = val
		default:
			v = fmt.Sprint(val)
		}
		el.WithAttr(string(a.Name), v)
	}
}

func (b *builder) text(t *ast.Text) []*kramdown.Element {
	value := string(t.Segment.Value(b.src))
	if t.HardLineBreak() {
		return []*kramdown.Element{
			kramdown.Leaf(kramdown.Text, value),
			kramdown.New(kramdown.BR),
		}
	}
	if t.SoftLineBreak() {
		value += "\n"
	}
	return single(kramdown.Leaf(kramdown.Text, value))
}

func (b *builder) autoLink(l *ast.AutoLink) *kramdown.Element {
	url := string(l.URL(b.src))
	if l.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
		url = "mailto:" + url
	}
	return kramdown.New(kramdown.A, kramdown.Leaf(kramdown.Text, string(l.Label(b.src)))).
		WithAttr("href", url)
}

// table creates table > thead, tbody. Goldmark places header cells directly
// below the header and rows directly below the table.
func (b *builder) table(n ast.Node) ([]*kramdown.Element, error) {
	tbl := kramdown.New(kramdown.Table)
	b.attributes(tbl, n)
	var body *kramdown.Element
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.Kind() {
		case east.KindTableHeader:
			row, err := b.container(kramdown.TR, c)
			if err != nil {
				return nil, err
			}
			tbl.Append(kramdown.New(kramdown.THead, row...))
		default:
			if body == nil {
				body = kramdown.New(kramdown.TBody)
				tbl.Append(body)
			}
			rows, err := b.node(c)
			if err != nil {
				return nil, err
			}
			body.Append(rows...)
		}
	}
	return single(tbl), nil
}

// plainText collects the text below n, without any markup.
func (b *builder) plainText(n ast.Node) string {
	var buf bytes.Buffer
	var collect func(ast.Node)
	collect = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(b.src))
				if t.SoftLineBreak() {
					buf.WriteByte(' ')
				}
			case *ast.String:
				buf.Write(t.Value)
			default:
				collect(c)
			}
		}
	}
	collect(n)
	return buf.String()
}

// lines returns the raw source lines of a block, e.g. a code block.
func (b *builder) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(b.src))
	}
	return buf.String()
}

// htmlContent classifies literal HTML: comments become xml_comment, anything
// else raw.
func htmlContent(content, category string) *kramdown.Element {
	t := kramdown.Raw
	if strings.HasPrefix(strings.TrimSpace(content), "<!--") {
		t = kramdown.XMLComment
	}
	return kramdown.Leaf(t, content).WithOption(kramdown.OptCategory, category)
}
