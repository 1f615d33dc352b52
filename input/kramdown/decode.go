package kramdown

import (
	"errors"
	"io"
	"os"

	"github.com/npillmayer/hexpress/core"
	"gopkg.in/yaml.v3"
)

// ErrUntypedElement is flagged for decoded elements without a type tag.
var ErrUntypedElement = errors.New("element without type")

// Decode reads an element tree from YAML.
//
// Decoding checks that every element carries a type tag, but nothing beyond
// that: whether a type is supported is up to the consumer of the tree.
func Decode(r io.Reader) (*Element, error) {
	root := &Element{}
	if err := yaml.NewDecoder(r).Decode(root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, core.WrapError(err, core.EMISSING, "empty element document")
		}
		return nil, core.WrapError(err, core.EINVALID, "cannot decode element tree")
	}
	var err error
	Walk(root, func(el *Element, depth int) bool {
		if err != nil {
			return false
		}
		if el.Type == "" {
			tracer().Errorf("decoded element at depth %d has no type", depth)
			err = core.WrapError(ErrUntypedElement, core.EINVALID,
				"element at depth %d has no type", depth)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("decoded element tree %s", root.Type)
	return root, nil
}

// DecodeFile reads an element tree from a YAML file.
func DecodeFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes an element tree as YAML.
func Encode(w io.Writer, el *Element) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(el); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode element tree")
	}
	return enc.Close()
}
