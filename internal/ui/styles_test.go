package ui

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestHyperlink(t *testing.T) {
	got := Hyperlink("https://example.com", "click here")
	want := "\x1b]8;;https://example.com\x1b\\click here\x1b]8;;\x1b\\"
	if got != want {
		t.Errorf("Hyperlink() = %q, want %q", got, want)
	}
}

func TestFileLink(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, ".vscode", "launch.json")
	rel := filepath.Join(".vscode", "launch.json")

	if got := FileLink(base, path, false); got != rel {
		t.Errorf("FileLink(link=false) = %q, want %q", got, rel)
	}

	got := FileLink(base, path, true)
	if !strings.HasPrefix(got, "\x1b]8;;file://") || !strings.Contains(got, rel) {
		t.Errorf("FileLink(link=true) = %q, want file:// hyperlink around %q", got, rel)
	}
}
