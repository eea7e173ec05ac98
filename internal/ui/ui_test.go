package ui_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cinequery/cinequery/internal/lint"
	"github.com/cinequery/cinequery/internal/ui"
)

func TestRenderCacheListJSON(t *testing.T) {
	rows := []ui.CacheRow{
		{Key: "9a0364b9e99bb480dd25e1f0284c8555", Query: "what's trending?", CachedAt: time.Now()},
		{Key: "45c48cce2e2d7fbdea1afc51c7c6ad26", Query: "tell me about Interstellar", CachedAt: time.Now()},
	}

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w //nolint:reassign // Test helper to capture stdout

	err := ui.RenderCacheList(rows, ui.ListOptions{JSON: true})
	w.Close()

	var buf bytes.Buffer
	io.Copy(&buf, r)
	os.Stdout = oldStdout //nolint:reassign // Restore stdout after test

	if err != nil {
		t.Fatalf("RenderCacheList(JSON=true) error = %v", err)
	}

	var decoded []ui.CacheRow
	if unmarshalErr := json.Unmarshal(buf.Bytes(), &decoded); unmarshalErr != nil {
		t.Fatalf("JSON unmarshal error = %v, output:\n%s", unmarshalErr, buf.String())
	}

	if len(decoded) != 2 {
		t.Errorf("decoded JSON has %d rows, want 2", len(decoded))
	}

	if decoded[0].Query != "what's trending?" {
		t.Errorf("decoded[0].Query = %q", decoded[0].Query)
	}
}

func TestShortHash(t *testing.T) {
	if got := ui.ShortHash("9a0364b9e99bb480dd25e1f0284c8555"); got != "9a0364b9e99b" {
		t.Errorf("ShortHash() = %q", got)
	}

	if got := ui.ShortHash("abc"); got != "abc" {
		t.Errorf("ShortHash(short) = %q", got)
	}
}

func TestPreviewQuery(t *testing.T) {
	if got := ui.PreviewQuery("  what's \n trending  "); got != "what's trending" {
		t.Errorf("PreviewQuery() = %q", got)
	}

	long := strings.Repeat("movies ", 20)
	got := ui.PreviewQuery(long)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("PreviewQuery(long) = %q, want truncated with ellipsis", got)
	}
}

func TestRenderAge(t *testing.T) {
	tests := []struct {
		name     string
		cachedAt time.Time
		want     string
	}{
		{"seconds", time.Now().Add(-30 * time.Second), "just now"},
		{"minutes", time.Now().Add(-5 * time.Minute), "5m ago"},
		{"hours", time.Now().Add(-3 * time.Hour), "3h ago"},
		{"days", time.Now().Add(-50 * time.Hour), "2d ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ui.RenderAge(tc.cachedAt); got != tc.want {
				t.Errorf("RenderAge() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCheckPrinter_File(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewCheckPrinterWithWriter(&buf)

	p.File("clean.md", nil)
	p.File("bad.md", []lint.Finding{
		{Construct: "ordered list", Excerpt: "1. first"},
		{Construct: "table"},
	})
	p.Done(2, 1)

	out := buf.String()
	for _, want := range []string{"clean.md", "bad.md", "ordered list", "(1. first)", "table", "1 of 2 file(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}
