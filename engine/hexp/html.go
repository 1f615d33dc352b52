package hexp

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode creates an HTML parse tree for item. The result is a fresh tree,
// independent of item; it may be modified by the caller.
func ToHTMLNode(item Item) *html.Node {
	switch it := item.(type) {
	case Text:
		return &html.Node{Type: html.TextNode, Data: string(it)}
	case *Node:
		if it == nil {
			return nil
		}
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     it.tag,
			DataAtom: atom.Lookup([]byte(it.tag)),
		}
		if len(it.attrs) > 0 {
			h.Attr = make([]html.Attribute, len(it.attrs))
			for i, a := range it.attrs {
				h.Attr[i] = html.Attribute{Key: a.Key, Val: a.Val}
			}
		}
		for _, ch := range it.children {
			h.AppendChild(ToHTMLNode(ch))
		}
		return h
	}
	return nil
}

// FromHTMLNode creates a markup tree from an HTML parse tree. Comments and
// doctype declarations are dropped. For a document node, the first element
// child (usually <html>) is returned.
func FromHTMLNode(h *html.Node) Item {
	if h == nil {
		return nil
	}
	switch h.Type {
	case html.TextNode:
		return Text(h.Data)
	case html.ElementNode:
		attrs := make(map[string]string, len(h.Attr))
		for _, a := range h.Attr {
			attrs[a.Key] = a.Val
		}
		var children []Item
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if item := FromHTMLNode(c); !IsNil(item) {
				children = append(children, item)
			}
		}
		return H(h.Data, attrs, children...)
	case html.DocumentNode:
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return FromHTMLNode(c)
			}
		}
	}
	return nil
}

// Render writes the HTML serialization of item to w.
func Render(w io.Writer, item Item) error {
	if IsNil(item) {
		return nil
	}
	return html.Render(w, ToHTMLNode(item))
}

// RenderDocument writes item as a complete HTML document, preceded by an
// HTML5 doctype declaration.
func RenderDocument(w io.Writer, item Item) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	if !IsNil(item) {
		doc.AppendChild(ToHTMLNode(item))
	}
	tracer().Debugf("rendering HTML document")
	return html.Render(w, doc)
}

// HTML returns the HTML serialization of item.
func HTML(item Item) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, item); err != nil {
		return "", err
	}
	return buf.String(), nil
}
