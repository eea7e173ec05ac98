package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cinequery/cinequery/internal/lint"
)

func TestHTMLName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"answer.md", "answer.html"},
		{"dir/nested/answer.txt", "answer.html"},
		{"noext", "noext.html"},
	}

	for _, tc := range tests {
		if got := htmlName(tc.path); got != tc.want {
			t.Errorf("htmlName(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestConstructList(t *testing.T) {
	findings := []lint.Finding{
		{Construct: "table"},
		{Construct: "ordered list"},
		{Construct: "table"},
	}

	if got := constructList(findings); got != "table, ordered list" {
		t.Errorf("constructList() = %q", got)
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("glob matches files", func(t *testing.T) {
		paths, err := expandGlobs([]string{filepath.Join(dir, "*.md")})
		if err != nil {
			t.Fatalf("expandGlobs() error = %v", err)
		}
		if len(paths) != 2 {
			t.Errorf("matched %d paths, want 2: %v", len(paths), paths)
		}
	})

	t.Run("plain path kept as-is", func(t *testing.T) {
		plain := filepath.Join(dir, "c.txt")
		paths, err := expandGlobs([]string{plain})
		if err != nil {
			t.Fatalf("expandGlobs() error = %v", err)
		}
		if len(paths) != 1 || paths[0] != plain {
			t.Errorf("paths = %v, want [%s]", paths, plain)
		}
	})

	t.Run("no matches is an error", func(t *testing.T) {
		if _, err := expandGlobs([]string{filepath.Join(dir, "*.rst")}); err == nil {
			t.Error("expandGlobs() error = nil, want no-match error")
		}
	})
}
