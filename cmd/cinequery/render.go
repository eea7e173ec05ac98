package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/cinequery/cinequery/internal/markup"
)

func newRenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Convert markup files (or stdin) to HTML",
		ArgsUsage: "[glob...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write .html files into this directory instead of stdout",
			},
		},
		Action: renderAction,
	}
}

func renderAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return renderStdin()
	}

	paths, err := expandGlobs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	outDir := cmd.String("out")
	if outDir != "" {
		if mkdirErr := os.MkdirAll(outDir, 0o755); mkdirErr != nil {
			return oops.Wrapf(mkdirErr, "creating output directory %q", outDir)
		}
	}

	for _, path := range paths {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return oops.
				Code("FILE_READ_ERROR").
				With("path", path).
				Wrapf(readErr, "reading input file")
		}

		html := markup.Render(string(content))

		if outDir == "" {
			if _, writeErr := os.Stdout.WriteString(html + "\n"); writeErr != nil {
				return oops.Wrapf(writeErr, "writing to stdout")
			}
			continue
		}

		outPath := filepath.Join(outDir, htmlName(path))
		if writeErr := os.WriteFile(outPath, []byte(html), 0o644); writeErr != nil {
			return oops.
				Code("FILE_WRITE_ERROR").
				With("path", outPath).
				Wrapf(writeErr, "writing rendered output")
		}
	}

	return nil
}

func renderStdin() error {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return oops.Wrapf(err, "reading stdin")
	}

	_, err = os.Stdout.WriteString(markup.Render(string(content)) + "\n")

	return oops.Wrapf(err, "writing to stdout")
}

// expandGlobs resolves each doublestar pattern and keeps plain paths as-is.
// Patterns that match nothing are an error so typos do not pass silently.
func expandGlobs(patterns []string) ([]string, error) {
	var paths []string

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			paths = append(paths, pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, oops.
				Code("INVALID_ARGS").
				With("pattern", pattern).
				Wrapf(err, "expanding glob pattern")
		}

		if len(matches) == 0 {
			return nil, oops.
				Code("FILE_NOT_FOUND").
				With("pattern", pattern).
				Errorf("no files match %q", pattern)
		}

		paths = append(paths, matches...)
	}

	return paths, nil
}

func htmlName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)

	return strings.TrimSuffix(base, ext) + ".html"
}
