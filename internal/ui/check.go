package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/cinequery/cinequery/internal/lint"
)

type styles struct {
	green *color.Color
	red   *color.Color
	dim   *color.Color
	bold  *color.Color
}

func newStyles() styles {
	return styles{
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
		dim:   color.New(color.Faint),
		bold:  color.New(color.Bold),
	}
}

// CheckPrinter renders subset lint results with colored output.
type CheckPrinter struct {
	w io.Writer
	s styles
}

// NewCheckPrinter creates a CheckPrinter that writes to stdout.
func NewCheckPrinter() *CheckPrinter {
	return &CheckPrinter{w: os.Stdout, s: newStyles()}
}

// NewCheckPrinterWithWriter creates a CheckPrinter that writes to the given writer.
func NewCheckPrinterWithWriter(w io.Writer) *CheckPrinter {
	return &CheckPrinter{w: w, s: newStyles()}
}

// File prints one file's findings, or a clean marker when there are none.
func (p *CheckPrinter) File(path string, findings []lint.Finding) {
	if len(findings) == 0 {
		fmt.Fprintf(p.w, "%s %s\n",
			p.s.green.Sprint("✓"),
			p.s.bold.Sprint(path),
		)
		return
	}

	fmt.Fprintf(p.w, "%s %s\n",
		p.s.red.Sprint("✗"),
		p.s.bold.Sprint(path),
	)

	for _, f := range findings {
		if f.Excerpt != "" {
			fmt.Fprintf(p.w, "  %s %s\n", f.Construct, p.s.dim.Sprintf("(%s)", f.Excerpt))
			continue
		}
		fmt.Fprintf(p.w, "  %s\n", f.Construct)
	}
}

// Done prints the closing tally.
func (p *CheckPrinter) Done(checked, flagged int) {
	if flagged == 0 {
		fmt.Fprintf(p.w, "%s %s\n",
			p.s.green.Sprint("✓"),
			p.s.dim.Sprintf("%d file(s) inside the markup subset", checked),
		)
		return
	}

	fmt.Fprintf(p.w, "%s %s\n",
		p.s.red.Sprint("✗"),
		p.s.dim.Sprintf("%d of %d file(s) use unsupported constructs", flagged, checked),
	)
}
