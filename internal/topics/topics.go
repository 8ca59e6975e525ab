// Package topics serves outfit's long-form help topics, embedded as
// markdown and rendered for the terminal with glamour.
package topics

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed content/*.md
var content embed.FS

// Names returns the available topic names, sorted
func Names() []string {
	entries, err := content.ReadDir("content")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Render returns the named topic rendered for the terminal, or false
// when no such topic exists
func Render(name string) (string, bool) {
	raw, err := content.ReadFile(path.Join("content", name+".md"))
	if err != nil {
		return "", false
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		// Fallback to plain text on error
		return string(raw), true
	}
	rendered, err := renderer.Render(string(raw))
	if err != nil {
		return string(raw), true
	}
	return rendered, true
}
