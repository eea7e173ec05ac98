package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// CacheRow is one cached answer as shown by `cinequery cache list`.
type CacheRow struct {
	Key      string    `json:"key"`
	Query    string    `json:"query"`
	CachedAt time.Time `json:"cached_at"`
}

type ListOptions struct {
	JSON bool
}

const previewLimit = 60

func RenderCacheList(rows []CacheRow, opts ListOptions) error {
	if opts.JSON {
		return renderCacheListJSON(rows)
	}

	renderCacheListTable(rows)
	return nil
}

func renderCacheListJSON(rows []CacheRow) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("encode cache list json: %w", err)
	}

	return nil
}

func renderCacheListTable(rows []CacheRow) {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.SetStyle(table.StyleRounded)

	writer.AppendHeader(table.Row{"HASH", "QUERY", "AGE"})

	for _, row := range rows {
		writer.AppendRow(table.Row{
			shortHash(row.Key),
			previewQuery(row.Query),
			renderAge(row.CachedAt),
		})
	}

	writer.Render()
}

// CheckSummaryRow is one file's result in the `check --summary` table.
type CheckSummaryRow struct {
	File       string
	Findings   int
	Constructs string
}

func RenderCheckSummary(rows []CheckSummaryRow) {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.SetStyle(table.StyleRounded)

	writer.AppendHeader(table.Row{"FILE", "FINDINGS", "CONSTRUCTS"})

	for _, row := range rows {
		writer.AppendRow(table.Row{row.File, row.Findings, row.Constructs})
	}

	writer.Render()
}

func shortHash(key string) string {
	if len(key) > 12 {
		return key[:12]
	}

	return key
}

func previewQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")

	runes := []rune(query)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "…"
	}

	return query
}

func renderAge(cachedAt time.Time) string {
	age := time.Since(cachedAt)

	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
