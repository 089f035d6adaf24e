package lint

import "github.com/charmbracelet/lipgloss"

// Terminal styles for reporter output. Lipgloss degrades colors based on
// terminal capabilities.
var (
	// styleCyan is used for file locations.
	styleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleYellow is used for caret indicators.
	styleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// styleGreen is used for the success message.
	styleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// styleGray is used for the linter name suffix.
	styleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style to text when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
