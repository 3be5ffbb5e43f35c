package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/validate"
)

// searchInput wraps the live search field. While focused, all printable
// keys go to the field and the filter updates on every keystroke.
type searchInput struct {
	input   textinput.Model
	focused bool
}

func newSearchInput() searchInput {
	ti := textinput.New()
	ti.Placeholder = "code, name, location or serial"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return searchInput{input: ti}
}

// Value returns the current search term.
func (s *searchInput) Value() string {
	return s.input.Value()
}

// Reset clears the term and focus.
func (s *searchInput) Reset() {
	s.input.SetValue("")
	s.input.Blur()
	s.focused = false
}

// updateAssetList handles keys on the asset list screen.
func (a *App) updateAssetList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search field is focused it owns the keyboard.
	if a.search.focused {
		switch msg.String() {
		case "esc":
			a.search.Reset()
			a.assetCursor = 0
			return a, nil
		case "enter":
			a.search.focused = false
			a.search.input.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.search.input, cmd = a.search.input.Update(msg)
		a.assetCursor = 0
		return a, cmd
	}

	filtered := a.filteredAssets()

	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc", "q":
		// Back navigation clears the active category.
		a.activeCategory = nil
		a.assets = nil
		a.search.Reset()
		a.view = ViewCategories
		return a, nil

	case "/":
		a.search.focused = true
		return a, a.search.input.Focus()

	case "up", "k":
		if a.assetCursor > 0 {
			a.assetCursor--
		}

	case "down", "j":
		if a.assetCursor < len(filtered)-1 {
			a.assetCursor++
		}

	case "enter":
		if asset := selectedAsset(filtered, a.assetCursor); asset != nil {
			a.openForm(asset)
			return a, textinput.Blink
		}

	case "a":
		a.openForm(nil)
		return a, textinput.Blink

	case "d":
		if asset := selectedAsset(filtered, a.assetCursor); asset != nil {
			a.confirm = &confirmPrompt{
				message: fmt.Sprintf("Delete asset %q?", asset.Name),
				action:  a.deleteAsset(asset.ID),
			}
		}

	case "v":
		if asset := selectedAsset(filtered, a.assetCursor); asset != nil && len(asset.Photos) > 0 {
			a.lightbox.Open(asset.Photos, 0)
			a.renderLightboxPreview()
		}

	case "e":
		return a, a.exportActive()

	case "r":
		return a, a.loadActiveAssets()
	}
	return a, nil
}

func selectedAsset(assets []*model.Asset, cursor int) *model.Asset {
	if cursor < 0 || cursor >= len(assets) {
		return nil
	}
	return assets[cursor]
}

// viewAssetList renders the asset list screen.
func (a *App) viewAssetList() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render(a.activeCategory.Name))
	sb.WriteString("  ")
	if a.exporting {
		sb.WriteString(StyleWarning.Render("exporting..."))
	} else {
		sb.WriteString(StyleSubtitle.Render(fmt.Sprintf("%d assets", len(a.assets))))
	}
	sb.WriteString("\n")
	sb.WriteString(a.search.input.View())
	sb.WriteString("\n\n")

	filtered := a.filteredAssets()
	if len(filtered) == 0 {
		if a.search.Value() != "" {
			sb.WriteString(StyleSubtitle.Render("No assets match the search."))
		} else {
			sb.WriteString(StyleSubtitle.Render("No assets in this category. Press 'a' to add one."))
		}
		sb.WriteString("\n")
	}

	for i, asset := range filtered {
		line := validate.TruncateString(asset.Name, 38)
		if asset.AssetID != "" {
			line += "  " + StyleCode.Render(asset.AssetID)
		}
		if asset.Location != "" {
			line += "  " + StyleSubtitle.Render(asset.Location)
		}
		if n := len(asset.Photos); n > 0 {
			line += "  " + StyleNote.Render(fmt.Sprintf("[%d photo]", n))
		}
		if i == a.assetCursor {
			sb.WriteString(StyleSelected.String() + line)
		} else {
			sb.WriteString(StyleUnselected.String() + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(a.helpBar(
		helpEntry("enter", "edit"),
		helpEntry("a", "add"),
		helpEntry("d", "delete"),
		helpEntry("v", "photos"),
		helpEntry("/", "search"),
		helpEntry("e", "export"),
		helpEntry("esc", "back"),
	))
	return sb.String()
}
