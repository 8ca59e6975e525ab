package style

import (
	"strings"

	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/pterm/pterm"
)

// RenderModuleList renders the registered modules with their
// one-line descriptions
func RenderModuleList(names []string, describe func(name string) string) string {
	if len(names) == 0 {
		return MutedStyle.Render("No modules registered")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Available modules") + "\n\n")

	for _, name := range names {
		line := pterm.Info.Prefix.Text + " " + TitleStyle.Render(name)
		result.WriteString(line + "\n")
		if desc := describe(name); desc != "" {
			result.WriteString(ListItemStyle.Render(MutedStyle.Render(desc)) + "\n")
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderResults renders the outcome of a dispatch run
func RenderResults(results []modules.Result) string {
	var result strings.Builder

	for _, r := range results {
		switch {
		case r.Declined():
			result.WriteString(WarningStyle.Render("skipped") + "  " + r.Module +
				MutedStyle.Render("  (declined)") + "\n")
		case r.Err != nil:
			result.WriteString(ErrorStyle.Render("failed") + "   " + r.Module + "\n")
			result.WriteString(ListItemStyle.Render(MutedStyle.Render(r.Err.Error())) + "\n")
		default:
			result.WriteString(SuccessStyle.Render("ok") + "       " + r.Module + "\n")
		}
	}

	return strings.TrimRight(result.String(), "\n")
}
