package convert_test

import (
	"fmt"

	"github.com/npillmayer/hexpress/engine/convert"
	"github.com/npillmayer/hexpress/engine/hexp"
	"github.com/npillmayer/hexpress/input/kramdown"
)

func ExampleConverter_Convert() {
	root := kramdown.New(kramdown.Root,
		kramdown.New(kramdown.Header, kramdown.Leaf(kramdown.Text, "Hello!")).
			WithOption(kramdown.OptLevel, 2),
		kramdown.New(kramdown.P,
			kramdown.Leaf(kramdown.Text, "Chunky "),
			kramdown.Leaf(kramdown.Codespan, "bacon"),
		),
	)
	doc, err := convert.New().Convert(root)
	if err != nil {
		fmt.Println(err)
		return
	}
	html, _ := hexp.HTML(doc)
	fmt.Println(html)
	// Output:
	// <html><body><h2>Hello!</h2><p>Chunky bacon</p></body></html>
}

func ExampleWithRule() {
	emphasis := convert.RuleFunc(func(c *convert.Converter, ctx convert.Context) (hexp.Item, error) {
		return c.Tag("em", ctx)
	})
	c := convert.New(convert.WithRule(emphasis, kramdown.Em))
	p := kramdown.New(kramdown.P,
		kramdown.Leaf(kramdown.Text, "Chunky "),
		kramdown.New(kramdown.Em, kramdown.Leaf(kramdown.Text, "bacon")),
	)
	item, _ := c.Convert(p)
	fmt.Println(item)
	_, err := convert.New().Convert(p)
	fmt.Println(err)
	// Output:
	// p["Chunky ", em["bacon"]]
	// unsupported node type: "em"
}
