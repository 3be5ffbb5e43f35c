package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wyhuang/stocktake/internal/imaging"
)

// updateLightbox handles keys while the image viewer is open. Navigation
// keys only move the cursor; only esc/q close the viewer.
func (a *App) updateLightbox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.lightbox.Close()
	case "right", "l", "n":
		a.lightbox.Next()
		a.renderLightboxPreview()
	case "left", "h", "p":
		a.lightbox.Prev()
		a.renderLightboxPreview()
	case "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

// renderLightboxPreview decodes the current image into a terminal
// preview. Done on navigation, not in View, so a decode failure can be
// shown in place of the image.
func (a *App) renderLightboxPreview() {
	payload := a.lightbox.Current()
	if payload == nil {
		return
	}

	cols, rows := a.previewSize()
	preview, err := imaging.Preview(payload, cols, rows)
	if err != nil {
		a.lightbox.preview = StyleError.Render("cannot decode photo: " + err.Error())
		return
	}
	a.lightbox.preview = preview
}

// previewSize bounds the preview to the terminal, leaving room for the
// caption and border.
func (a *App) previewSize() (cols, rows int) {
	cols = a.width - 8
	rows = a.height - 8
	if cols < 16 {
		cols = 16
	}
	if rows < 8 {
		rows = 8
	}
	return cols, rows
}

// viewLightbox renders the viewer overlay.
func (a *App) viewLightbox() string {
	var sb strings.Builder
	sb.WriteString(a.lightbox.preview)
	sb.WriteString("\n\n")
	sb.WriteString(StyleSubtitle.Render(fmt.Sprintf("%d/%d", a.lightbox.Index+1, len(a.lightbox.Images))))
	sb.WriteString("  ")
	sb.WriteString(StyleSubtitle.Render("←/→ navigate · esc close"))
	return StyleLightboxBox.Render(sb.String())
}
