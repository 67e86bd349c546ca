// Package render formats conversion results for terminals: lipgloss
// color styles, CSS syntax highlighting, and a reporter that writes a
// result with its warnings to an io.Writer.
package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for consistent output formatting. Lipgloss
// automatically degrades colors based on terminal capabilities.
var (
	// StyleSelector is used for the rule selector and braces.
	StyleSelector = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleProperty is used for declaration property names.
	StyleProperty = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	// StyleValue is used for declaration values.
	StyleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	// StyleComment is used for comments, including the no-styles notice.
	StyleComment = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	// StyleError is used for conversion failure messages.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning is used for advisory warnings.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// ShouldUseColors decides whether to emit colors: an explicit flag wins,
// then CI color hints, then TTY detection.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}
