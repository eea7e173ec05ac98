package main

import (
	"context"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/cinequery/cinequery/internal/lint"
	"github.com/cinequery/cinequery/internal/ui"
)

func newCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Verify files stay inside the renderer's markup subset",
		ArgsUsage: "<glob...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Print a per-file summary table",
			},
		},
		Action: checkAction,
	}
}

func checkAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: cinequery check 'answers/**/*.md'").
			Errorf("no files given")
	}

	paths, err := expandGlobs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	printer := ui.NewCheckPrinter()

	var (
		flagged int
		summary []ui.CheckSummaryRow
	)

	for _, path := range paths {
		content, readErr := readFile(path)
		if readErr != nil {
			return readErr
		}

		findings := lint.Check(content)
		if len(findings) > 0 {
			flagged++
			summary = append(summary, ui.CheckSummaryRow{
				File:       path,
				Findings:   len(findings),
				Constructs: constructList(findings),
			})
		}

		printer.File(path, findings)
	}

	printer.Done(len(paths), flagged)

	if cmd.Bool("summary") && len(summary) > 0 {
		ui.RenderCheckSummary(summary)
	}

	if flagged > 0 {
		return oops.
			Code("SUBSET_VIOLATION").
			With("files", flagged).
			Hint("Rewrite flagged constructs as headers, bold, italic, links, or flat lists").
			Errorf("%d file(s) use constructs the renderer does not support", flagged)
	}

	return nil
}

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.
			Code("FILE_READ_ERROR").
			With("path", path).
			Wrapf(err, "reading input file")
	}

	return content, nil
}

// constructList joins the distinct construct names found in one file.
func constructList(findings []lint.Finding) string {
	seen := make(map[string]bool, len(findings))
	var names []string

	for _, f := range findings {
		if !seen[f.Construct] {
			seen[f.Construct] = true
			names = append(names, f.Construct)
		}
	}

	return strings.Join(names, ", ")
}
