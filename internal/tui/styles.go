package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // purple
	colorSecondary = lipgloss.Color("#10B981") // green
	colorDanger    = lipgloss.Color("#EF4444") // red
	colorMuted     = lipgloss.Color("#6B7280") // gray
	colorText      = lipgloss.Color("#F9FAFB") // white
	colorInk       = lipgloss.Color("#000000")

	// Title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Form
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMuted).
			Padding(0, 2)

	focusedButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				Background(colorPrimary).
				Padding(0, 2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Sequence grid
	residueStyle = lipgloss.NewStyle().
			Foreground(colorInk)

	diffStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorDanger)

	selectedStyle = lipgloss.NewStyle().
			Reverse(true)

	// Copy confirmation
	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorInk).
			Background(colorSecondary).
			Padding(0, 1)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// fillStyle returns the style for a residue with the given background
// colour. An empty colour means no fill.
func fillStyle(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle()
	}
	return residueStyle.Background(lipgloss.Color(color))
}
