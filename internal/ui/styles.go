package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	ColorPrimary = lipgloss.Color("#2563EB") // Blue
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles.
var (
	// StyleTitle is used for screen titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleSelected is used for the row under the cursor.
	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			SetString("> ")

	// StyleUnselected pads unselected rows to align with the cursor.
	StyleUnselected = lipgloss.NewStyle().
			SetString("  ")

	// StyleCode is used for asset codes.
	StyleCode = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleNote is used for notes.
	StyleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorMuted)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for warnings and confirm prompts.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleSuccess is used for success messages.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleHelp is used for the help bar at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)
)

// Box styles.
var (
	// StyleBox frames a screen section.
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// StyleModalBox frames the category modal and confirm prompts.
	StyleModalBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	// StyleLightboxBox frames the image viewer.
	StyleLightboxBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)
)

// helpEntry renders a single "key desc" pair for the help bar.
func helpEntry(key, desc string) string {
	return StyleHelpKey.Render(key) + " " + StyleSubtitle.Render(desc)
}
