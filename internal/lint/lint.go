// Package lint checks answer text against the display renderer's markup
// subset. The pipeline is only supposed to emit headers (levels 1-3), bold,
// italic, links, and flat unordered lists; everything else reaches the page
// unrendered. Check parses a document as full markdown and reports the
// constructs the renderer does not handle.
package lint

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

const excerptLimit = 48

// Finding describes one construct outside the supported subset.
type Finding struct {
	Construct string `json:"construct"`
	Excerpt   string `json:"excerpt,omitempty"`
}

// Check parses content as markdown and returns a finding for every
// construct the markup renderer would pass through unrendered. A document
// that stays inside the subset yields no findings.
func Check(content []byte) []Finding {
	mdParser := parser.NewWithExtensions(parser.CommonExtensions)
	doc := mdParser.Parse(content)

	var findings []Finding

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		if f, ok := classify(node); ok {
			findings = append(findings, f)
		}

		return ast.GoToNext
	})

	return findings
}

func classify(node ast.Node) (Finding, bool) {
	switch n := node.(type) {
	case *ast.CodeBlock:
		return Finding{Construct: "code block", Excerpt: excerpt(string(n.Literal))}, true
	case *ast.Code:
		return Finding{Construct: "inline code", Excerpt: excerpt(string(n.Literal))}, true
	case *ast.BlockQuote:
		return Finding{Construct: "block quote", Excerpt: excerpt(extractText(n))}, true
	case *ast.Table:
		return Finding{Construct: "table", Excerpt: excerpt(extractText(n))}, true
	case *ast.Image:
		return Finding{Construct: "image", Excerpt: excerpt(extractText(n))}, true
	case *ast.Heading:
		if n.Level > 3 {
			return Finding{Construct: "heading deeper than level 3", Excerpt: excerpt(extractText(n))}, true
		}
	case *ast.List:
		return classifyList(n)
	}

	return Finding{}, false
}

func classifyList(list *ast.List) (Finding, bool) {
	if list.ListFlags&ast.ListTypeOrdered != 0 {
		return Finding{Construct: "ordered list", Excerpt: excerpt(extractText(list))}, true
	}

	// An unordered list is fine at the top level but the renderer never
	// nests runs, so a list under a list item is lost.
	if _, nested := list.GetParent().(*ast.ListItem); nested {
		return Finding{Construct: "nested list", Excerpt: excerpt(extractText(list))}, true
	}

	return Finding{}, false
}

func extractText(node ast.Node) string {
	var buf strings.Builder

	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if entering {
			if text, ok := n.(*ast.Text); ok {
				buf.Write(text.Literal)
			}
		}
		return ast.GoToNext
	})

	return strings.Join(strings.Fields(buf.String()), " ")
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}

	runes := []rune(s)
	if len(runes) > excerptLimit {
		return string(runes[:excerptLimit]) + "…"
	}

	return s
}
