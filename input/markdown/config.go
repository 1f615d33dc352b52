package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Config selects the Markdown dialect.
type Config struct {
	Extensions    []string // goldmark extensions by name, e.g. "gfm" or "table"
	AutoHeadingID bool     // generate id attributes for headers
	Blanks        bool     // emit blank elements for blank lines between blocks
}

// DefaultConfig returns the configuration used by package-level Parse:
// GitHub flavoured Markdown with header IDs and blank elements.
func DefaultConfig() Config {
	return Config{
		Extensions:    []string{"gfm"},
		AutoHeadingID: true,
		Blanks:        true,
	}
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
}

// gfmParts are the extensions bundled by extension.GFM.
var gfmParts = []goldmark.Extender{
	extension.Table, extension.Strikethrough, extension.Linkify, extension.TaskList,
}

// collectExtensions looks up extensions by name. Names are case-insensitive;
// unknown names are ignored. Every extension is included at most once.
func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[goldmark.Extender]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			tracer().Infof("unknown Markdown extension %q ignored", name)
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		if ext == extension.GFM {
			extenders = withoutGFMParts(extenders)
			for _, part := range gfmParts {
				seen[part] = struct{}{}
			}
		}
		extenders = append(extenders, ext)
		seen[ext] = struct{}{}
	}
	return extenders
}

func withoutGFMParts(extenders []goldmark.Extender) []goldmark.Extender {
	kept := extenders[:0]
	for _, ext := range extenders {
		isPart := false
		for _, part := range gfmParts {
			if ext == part {
				isPart = true
			}
		}
		if !isPart {
			kept = append(kept, ext)
		}
	}
	return kept
}
