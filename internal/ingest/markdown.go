// Package ingest extracts titled sections from a Markdown source document
// so that knowledge answers can be authored as prose instead of inline
// strings.
package ingest

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// SectionLevel is the heading level that opens a section.
const SectionLevel = 3

// Document is a parsed Markdown document.
type Document struct {
	source []byte
	root   ast.Node
}

// Parse parses Markdown source. Parsing never fails; malformed input yields
// paragraphs.
func Parse(source []byte) *Document {
	src := bytes.Clone(source)
	root := goldmark.New().Parser().Parse(text.NewReader(src))
	return &Document{source: src, root: root}
}

// ParseFile reads and parses the Markdown file at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// Titles lists the text of every section heading in document order.
func (d *Document) Titles() []string {
	var titles []string
	for n := d.root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == SectionLevel {
			titles = append(titles, d.blockText(h))
		}
	}
	return titles
}

// Section returns the body of the level-3 section titled title.
//
// Collection starts after the matching heading and stops at the next heading
// of level 1, 2 or 3 with a different title. Nested headings keep their "#"
// markers, list items are rendered as "- item" and blocks are separated by
// a blank line. A missing section yields "".
func (d *Document) Section(title string) string {
	title = strings.TrimSpace(title)
	collecting := false
	var parts []string

	for n := d.root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			heading := d.blockText(h)
			if h.Level == SectionLevel && heading == title {
				collecting = true
				continue
			}
			if collecting && h.Level <= SectionLevel {
				break
			}
			if collecting {
				parts = append(parts, strings.Repeat("#", min(h.Level, 6))+" "+heading)
			}
			continue
		}
		if !collecting {
			continue
		}
		parts = append(parts, d.render(n)...)
	}
	return strings.Join(parts, "\n\n")
}

// render converts a top-level block to its output parts.
func (d *Document) render(n ast.Node) []string {
	switch n := n.(type) {
	case *ast.List:
		var items []string
		d.collectItems(n, &items)
		return items
	case *ast.ThematicBreak:
		return nil
	default:
		if s := d.blockText(n); s != "" {
			return []string{s}
		}
		return nil
	}
}

// collectItems flattens a possibly nested list into "- item" parts.
func (d *Document) collectItems(list *ast.List, items *[]string) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				d.collectItems(nested, items)
				continue
			}
			if s := d.blockText(c); s != "" {
				*items = append(*items, "- "+s)
			}
		}
	}
}

// blockText returns the trimmed source lines of a block, descending into
// container blocks that carry no lines of their own.
func (d *Document) blockText(n ast.Node) string {
	lines := n.Lines()
	if lines != nil && lines.Len() > 0 {
		out := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if line := strings.TrimSpace(string(seg.Value(d.source))); line != "" {
				out = append(out, line)
			}
		}
		return strings.Join(out, "\n")
	}

	var out []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() != ast.TypeBlock {
			continue
		}
		if s := d.blockText(c); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}
