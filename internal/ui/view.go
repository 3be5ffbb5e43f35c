package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen plus any overlay.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	// Overlays replace the screen entirely; the terminal has no notion
	// of stacking.
	if a.lightbox.IsOpen {
		return a.viewLightbox()
	}
	if a.confirm != nil {
		return a.viewConfirm()
	}
	if a.modal != nil {
		return a.viewCategoryModal()
	}

	var body string
	switch a.view {
	case ViewCategories:
		body = a.viewCategories()
	case ViewAssetList:
		body = a.viewAssetList()
	case ViewAssetForm:
		body = a.viewAssetForm()
	case ViewSettings:
		body = a.viewSettings()
	}

	var sections []string
	sections = append(sections, body)

	if a.err != nil {
		sections = append(sections, StyleError.Render("Error: "+a.err.Error()))
	}
	if a.status != "" {
		sections = append(sections, StyleSuccess.Render(a.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewConfirm renders the destructive-action prompt.
func (a *App) viewConfirm() string {
	var sb strings.Builder
	sb.WriteString(StyleWarning.Render(a.confirm.message))
	sb.WriteString("\n\n")
	sb.WriteString(StyleSubtitle.Render("y confirm · n cancel"))
	return StyleModalBox.Render(sb.String())
}
