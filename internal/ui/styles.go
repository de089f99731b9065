package ui

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Styles are declared at package level but initialised inside init() so they
// bind to the stderr renderer (lipgloss v1 captures the renderer at creation).
var (
	Bold   lipgloss.Style
	Dim    lipgloss.Style
	Blue   lipgloss.Style
	Orange lipgloss.Style
	Green  lipgloss.Style
	Red    lipgloss.Style

	TagDim  lipgloss.Style
	TagBlue lipgloss.Style
)

func init() {
	// Use stderr for TTY detection: stdout may be captured by the build system
	// (or carry --dry-run output) while stderr still goes to the terminal.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))

	Bold = lipgloss.NewStyle().Bold(true)
	Dim = lipgloss.NewStyle().Faint(true)
	Blue = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	Orange = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	Green = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Red = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	TagDim = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")).Padding(0, 1)
	TagBlue = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Background(lipgloss.Color("17")).Padding(0, 1)
}

// Hyperlink wraps text in an OSC 8 hyperlink escape sequence.
// Terminals that don't support it will just show the text.
func Hyperlink(url, text string) string {
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, text)
}

// FileLink renders path relative to base, wrapped in a file:// hyperlink when
// link is set.
func FileLink(base, path string, link bool) string {
	text := path
	if rel, err := filepath.Rel(base, path); err == nil {
		text = rel
	}
	if !link {
		return text
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return text
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return Hyperlink(u.String(), text)
}
