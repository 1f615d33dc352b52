/*
Package hexpdbg draws markup trees with GraphViz.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hexpdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/hexpress/engine/hexp"
	"github.com/npillmayer/schuko/tracing"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// maxNodes guards against runaway output for very large trees.
const maxNodes = 5000

// ToGraphViz creates a graphical representation of a markup tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root hexp.Item, w io.Writer, tracer tracing.Trace) error {
	header, err := template.New("markupTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"label":       label,
			"fill":        fillColor,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	if !hexp.IsNil(root) {
		if _, err = items(root, w, &gparams, tracer); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// gnode is the template data for a single tree item.
type gnode struct {
	Item hexp.Item
	Name string
}

func (g gnode) IsText() bool {
	_, ok := g.Item.(hexp.Text)
	return ok
}

type gedge struct {
	N1, N2 gnode
}

func items(item hexp.Item, w io.Writer, gparams *graphParamsType, tracer tracing.Trace) (gnode, error) {
	gparams.cnt++
	g := gnode{Item: item, Name: fmt.Sprintf("node%05d", gparams.cnt)}
	if gparams.cnt > maxNodes {
		return g, fmt.Errorf("tree too large for drawing, more than %d nodes", maxNodes)
	}
	if err := gparams.NodeTmpl.Execute(w, g); err != nil {
		return g, err
	}
	n, ok := item.(*hexp.Node)
	if !ok {
		return g, nil
	}
	tracer.Debugf("node = %s", n.Tag())
	for i := 0; i < n.ChildCount(); i++ {
		child, err := items(n.Child(i), w, gparams, tracer)
		if err != nil {
			return g, err
		}
		if err = gparams.EdgeTmpl.Execute(w, gedge{g, child}); err != nil {
			return g, err
		}
	}
	return g, nil
}

// ---------------------------------------------------------------------------

func label(g gnode) string {
	n, ok := g.Item.(*hexp.Node)
	if !ok {
		return "\"?\""
	}
	var b strings.Builder
	b.WriteString(dotEscape(n.Tag()))
	for _, a := range n.AttrList() {
		if a.Key == "style" {
			continue
		}
		fmt.Fprintf(&b, "\\n%s=%s", dotEscape(a.Key), dotEscape(a.Val))
	}
	return "\"" + b.String() + "\""
}

func shortText(g gnode) string {
	txt := string(g.Item.(hexp.Text))
	if r := []rune(txt); len(r) > 10 {
		txt = string(r[:10]) + "…"
	}
	s := `"T \"` + dotEscape(txt) + `\""`
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// dotEscape escapes s for use inside a quoted DOT string.
func dotEscape(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	return strings.Replace(s, `"`, `\"`, -1)
}

// fillColor uses an inline background color if the node has one.
func fillColor(g gnode) string {
	if n, ok := g.Item.(*hexp.Node); ok {
		if bg, ok := n.Style("background-color"); ok {
			return fmt.Sprintf("%q", bg)
		}
	}
	return "lightblue3"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label . }} shape=box style=filled fillcolor={{ fill . }} ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
