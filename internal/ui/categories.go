package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/validate"
)

// categoryModal captures a new category name. It stays open with the
// error shown when a save fails.
type categoryModal struct {
	input  textinput.Model
	err    error
	saving bool
}

func newCategoryModal() *categoryModal {
	ti := textinput.New()
	ti.Placeholder = "Category name"
	ti.CharLimit = validate.MaxNameLength
	ti.Focus()
	return &categoryModal{input: ti}
}

// updateCategories handles keys on the category list screen.
func (a *App) updateCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "up", "k":
		if a.catCursor > 0 {
			a.catCursor--
		}

	case "down", "j":
		if a.catCursor < len(a.categories)-1 {
			a.catCursor++
		}

	case "enter":
		if category := a.selectedCategory(); category != nil {
			a.activeCategory = category
			a.assets = nil
			a.assetCursor = 0
			a.search.Reset()
			a.view = ViewAssetList
			return a, a.loadActiveAssets()
		}

	case "a":
		a.modal = newCategoryModal()
		return a, textinput.Blink

	case "d":
		if category := a.selectedCategory(); category != nil {
			a.confirm = &confirmPrompt{
				message: fmt.Sprintf("Delete category %q and all its assets?", category.Name),
				action:  a.deleteCategory(category.ID),
			}
		}

	case "s":
		a.view = ViewSettings
		return a, a.loadSettings()

	case "r":
		return a, a.loadCategories()
	}
	return a, nil
}

func (a *App) selectedCategory() *model.Category {
	if a.catCursor < 0 || a.catCursor >= len(a.categories) {
		return nil
	}
	return a.categories[a.catCursor]
}

// updateCategoryModal handles keys while the add-category modal is open.
func (a *App) updateCategoryModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.modal = nil
		return a, nil

	case "enter":
		if a.modal.saving {
			return a, nil
		}
		name, err := validate.CategoryName(a.modal.input.Value())
		if err != nil {
			a.modal.err = err
			return a, nil
		}
		a.modal.saving = true
		a.modal.err = nil
		return a, a.saveCategory(name)
	}

	var cmd tea.Cmd
	a.modal.input, cmd = a.modal.input.Update(msg)
	return a, cmd
}

// finishCategorySave closes the modal on success, or keeps it open with
// the error surfaced.
func (a *App) finishCategorySave(err error) (tea.Model, tea.Cmd) {
	if a.modal == nil {
		return a, nil
	}
	a.modal.saving = false
	if err != nil {
		a.modal.err = err
		return a, nil
	}
	a.modal = nil
	a.status = "Category created"
	return a, a.loadCategories()
}

// viewCategories renders the category list screen.
func (a *App) viewCategories() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Stocktake"))
	sb.WriteString("  ")
	sb.WriteString(StyleSubtitle.Render("categories"))
	sb.WriteString("\n\n")

	if len(a.categories) == 0 {
		sb.WriteString(StyleSubtitle.Render("No categories yet. Press 'a' to add one."))
		sb.WriteString("\n")
	}

	for i, category := range a.categories {
		line := category.Name
		if category.Description != "" {
			line += "  " + StyleNote.Render(category.Description)
		}
		if i == a.catCursor {
			sb.WriteString(StyleSelected.String() + line)
		} else {
			sb.WriteString(StyleUnselected.String() + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(a.helpBar(
		helpEntry("enter", "open"),
		helpEntry("a", "add"),
		helpEntry("d", "delete"),
		helpEntry("s", "settings"),
		helpEntry("q", "quit"),
	))
	return sb.String()
}

// viewCategoryModal renders the add-category modal.
func (a *App) viewCategoryModal() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("New category"))
	sb.WriteString("\n\n")
	sb.WriteString(a.modal.input.View())
	sb.WriteString("\n")
	if a.modal.err != nil {
		sb.WriteString(StyleError.Render(a.modal.err.Error()))
		sb.WriteString("\n")
	}
	if a.modal.saving {
		sb.WriteString(StyleSubtitle.Render("Saving..."))
		sb.WriteString("\n")
	}
	sb.WriteString(StyleSubtitle.Render("enter save · esc cancel"))
	return StyleModalBox.Render(sb.String())
}

// helpBar joins help entries into the bottom bar.
func (a *App) helpBar(entries ...string) string {
	return StyleHelp.Render(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(entries, "  ")))
}
