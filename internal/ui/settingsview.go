package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wyhuang/stocktake/internal/suggest"
)

// updateSettings handles keys on the settings screen.
func (a *App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc", "q", "s":
		a.view = ViewCategories
	}
	return a, nil
}

// viewSettings renders the accumulated suggestion history.
func (a *App) viewSettings() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Settings"))
	sb.WriteString("  ")
	sb.WriteString(StyleSubtitle.Render("suggestion history"))
	sb.WriteString("\n\n")

	if a.settings == nil {
		sb.WriteString(StyleSubtitle.Render("Loading..."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(renderValueList("Saved names", a.settings.SavedNames))
		sb.WriteString(renderValueList("Saved locations", a.settings.SavedLocations))
		sb.WriteString(renderValueList("Saved prefixes", a.settings.SavedPrefixes))
		if next := suggest.FromSettings(a.settings); next != "" {
			sb.WriteString(StyleSubtitle.Render("Next asset code: "))
			sb.WriteString(StyleCode.Render(next))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(a.helpBar(helpEntry("esc", "back")))
	return StyleBox.Render(sb.String())
}

// renderValueList shows up to ten values of a suggestion set.
func renderValueList(title string, values []string) string {
	var sb strings.Builder
	sb.WriteString(StyleSubtitle.Render(fmt.Sprintf("%s (%d)", title, len(values))))
	sb.WriteString("\n")
	for i, v := range values {
		if i >= 10 {
			sb.WriteString(StyleNote.Render(fmt.Sprintf("  ... and %d more", len(values)-10)))
			sb.WriteString("\n")
			break
		}
		sb.WriteString("  " + v + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
