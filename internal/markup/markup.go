// Package markup converts the constrained lightweight-markup subset emitted
// by the answer pipeline (headers, bold, italic, links, unordered list items)
// into HTML for the results page. It is deliberately not a markdown parser:
// the upstream generator is in-repo and trusted, and anything outside the
// five recognized patterns passes through unchanged.
package markup

import (
	"regexp"
	"strings"
)

// Patterns are compiled once and never mutated. Order matters: headers are
// matched longest-prefix-first so "###" is never misread as a level-1
// marker, and bold runs before italic so "**" pairs are consumed before the
// single-asterisk pass sees them.
var (
	heading3Re = regexp.MustCompile(`(?m)^### (.*)$`)
	heading2Re = regexp.MustCompile(`(?m)^## (.*)$`)
	// A 1-3 hash run with an optional space. The optional space is what makes
	// a four-hash line come out as an <h1> keeping one stray "#" in its text
	// instead of being skipped entirely.
	heading1Re = regexp.MustCompile(`(?m)^#{1,3} ?(.*)$`)

	boldRe   = regexp.MustCompile(`(?s)\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`(?s)\*(.*?)\*`)
	linkRe   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	listRe   = regexp.MustCompile(`(?m)^- (.*)$`)
)

// Render rewrites the recognized lightweight-markup patterns in input to
// HTML and brackets contiguous runs of list items with <ul>/</ul>. It is a
// pure function: any input is accepted, text matching no pattern is returned
// unchanged, and it never fails.
func Render(input string) string {
	out := passHeadings(input)
	out = passBold(out)
	out = passItalic(out)
	out = passLinks(out)
	out = passListItems(out)

	return wrapListRuns(out)
}

func passHeadings(s string) string {
	s = heading3Re.ReplaceAllString(s, "<h3>$1</h3>")
	s = heading2Re.ReplaceAllString(s, "<h2>$1</h2>")

	return heading1Re.ReplaceAllString(s, "<h1>$1</h1>")
}

func passBold(s string) string {
	return boldRe.ReplaceAllString(s, "<strong>$1</strong>")
}

func passItalic(s string) string {
	return italicRe.ReplaceAllString(s, "<em>$1</em>")
}

func passLinks(s string) string {
	return linkRe.ReplaceAllString(s, `<a href="$2" target="_blank">$1</a>`)
}

func passListItems(s string) string {
	return listRe.ReplaceAllString(s, "<li>$1</li>")
}

// wrapListRuns scans converted lines with a two-state machine (outside-list,
// inside-list). Opening markers are prefixed onto the first item of a run,
// closing markers suffixed onto the last, and a run still open at the end of
// the document is closed by an appended trailing line. Runs never nest.
func wrapListRuns(s string) string {
	lines := strings.Split(s, "\n")
	inList := false

	for i, line := range lines {
		isItem := strings.HasPrefix(line, "<li>")

		switch {
		case isItem && !inList:
			lines[i] = "<ul>" + line
			inList = true
		case !isItem && inList:
			lines[i-1] += "</ul>"
			inList = false
		}
	}

	if inList {
		lines = append(lines, "</ul>")
	}

	return strings.Join(lines, "\n")
}
