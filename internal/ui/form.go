package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wyhuang/stocktake/internal/imaging"
	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/suggest"
	"github.com/wyhuang/stocktake/internal/validate"
)

// Form field indices.
const (
	fieldName = iota
	fieldCode
	fieldSerial
	fieldLocation
	fieldNote
	fieldPhoto
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name",
	"Asset code",
	"Serial number",
	"Location",
	"Note",
	"Add photo (path)",
}

// assetForm creates or updates a single asset. It owns the keyboard
// while the ASSET_FORM view is active.
type assetForm struct {
	categoryID string
	existing   *model.Asset
	inputs     [fieldCount]textinput.Model
	focus      int
	photos     [][]byte
	err        error
	suggestIdx int
}

// openForm enters the ASSET_FORM view, preloading fields when editing an
// existing asset.
func (a *App) openForm(existing *model.Asset) {
	form := &assetForm{
		categoryID: a.activeCategory.ID,
		existing:   existing,
	}

	for i := range form.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = validate.MaxNoteLength
		form.inputs[i] = ti
	}
	form.inputs[fieldName].CharLimit = validate.MaxNameLength
	form.inputs[fieldCode].CharLimit = validate.MaxAssetCodeLength
	form.inputs[fieldLocation].CharLimit = validate.MaxLocationLength

	if existing != nil {
		form.inputs[fieldName].SetValue(existing.Name)
		form.inputs[fieldCode].SetValue(existing.AssetID)
		form.inputs[fieldSerial].SetValue(existing.SerialNumber)
		form.inputs[fieldLocation].SetValue(existing.Location)
		form.inputs[fieldNote].SetValue(existing.Note)
		form.photos = append([][]byte(nil), existing.Photos...)
	} else if a.settings != nil {
		// Suggest the next sequential code for new assets.
		form.inputs[fieldCode].SetValue(suggest.FromSettings(a.settings))
	}

	form.inputs[fieldName].Focus()
	a.form = form
	a.view = ViewAssetForm
}

// updateAssetForm handles keys while the form is active.
func (a *App) updateAssetForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := a.form

	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		// Cancel: back to the list with no persistence.
		a.form = nil
		a.view = ViewAssetList
		return a, nil

	case "tab", "down":
		form.setFocus((form.focus + 1) % fieldCount)
		return a, textinput.Blink

	case "shift+tab", "up":
		form.setFocus((form.focus - 1 + fieldCount) % fieldCount)
		return a, textinput.Blink

	case "ctrl+s":
		return a.submitForm()

	case "ctrl+o":
		form.cycleSuggestion(a.settings)
		return a, nil

	case "ctrl+v":
		if len(form.photos) > 0 {
			a.lightbox.Open(form.photos, 0)
			a.renderLightboxPreview()
		}
		return a, nil

	case "ctrl+x":
		if len(form.photos) > 0 {
			form.photos = form.photos[:len(form.photos)-1]
		}
		return a, nil

	case "enter":
		if form.focus == fieldPhoto {
			form.attachPhoto()
			return a, nil
		}
		form.setFocus((form.focus + 1) % fieldCount)
		return a, textinput.Blink
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	return a, cmd
}

// submitForm validates and persists the asset.
func (a *App) submitForm() (tea.Model, tea.Cmd) {
	form := a.form

	name := validate.SanitizeName(form.inputs[fieldName].Value())
	if err := validate.Name(name); err != nil {
		form.err = err
		return a, nil
	}
	code := strings.TrimSpace(form.inputs[fieldCode].Value())
	if err := validate.AssetCode(code); err != nil {
		form.err = err
		return a, nil
	}
	location := strings.TrimSpace(form.inputs[fieldLocation].Value())
	if err := validate.Location(location); err != nil {
		form.err = err
		return a, nil
	}
	note := validate.SanitizeNote(form.inputs[fieldNote].Value())
	if err := validate.Note(note); err != nil {
		form.err = err
		return a, nil
	}

	asset := form.existing
	if asset == nil {
		asset = model.NewAsset(model.NewID(), form.categoryID)
	}
	asset.Name = name
	asset.AssetID = code
	asset.SerialNumber = strings.TrimSpace(form.inputs[fieldSerial].Value())
	asset.Location = location
	asset.Note = note
	asset.Photos = form.photos

	form.err = nil
	return a, a.saveAsset(asset)
}

func (f *assetForm) setFocus(focus int) {
	f.inputs[f.focus].Blur()
	f.focus = focus
	f.suggestIdx = 0
	f.inputs[f.focus].Focus()
}

// cycleSuggestion fills the focused field from the accumulated history,
// advancing through the saved values on repeated presses.
func (f *assetForm) cycleSuggestion(settings *model.Settings) {
	if settings == nil {
		return
	}

	var values []string
	switch f.focus {
	case fieldName:
		values = settings.SavedNames
	case fieldLocation:
		values = settings.SavedLocations
	case fieldCode:
		if next := suggest.FromSettings(settings); next != "" {
			f.inputs[fieldCode].SetValue(next)
			f.inputs[fieldCode].CursorEnd()
		}
		return
	default:
		return
	}

	if len(values) == 0 {
		return
	}
	f.inputs[f.focus].SetValue(values[f.suggestIdx%len(values)])
	f.inputs[f.focus].CursorEnd()
	f.suggestIdx++
}

// attachPhoto reads the file named in the photo field, normalizes it and
// appends it to the pending photo list.
func (f *assetForm) attachPhoto() {
	path := strings.TrimSpace(f.inputs[fieldPhoto].Value())
	if path == "" {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		f.err = err
		return
	}
	defer file.Close()

	payload, err := imaging.Process(file)
	if err != nil {
		f.err = err
		return
	}

	f.photos = append(f.photos, payload)
	f.inputs[fieldPhoto].SetValue("")
	f.err = nil
}

// viewAssetForm renders the form screen.
func (a *App) viewAssetForm() string {
	form := a.form

	var sb strings.Builder
	if form.existing != nil {
		sb.WriteString(StyleTitle.Render("Edit asset"))
	} else {
		sb.WriteString(StyleTitle.Render("New asset"))
	}
	sb.WriteString("  ")
	sb.WriteString(StyleSubtitle.Render(a.activeCategory.Name))
	sb.WriteString("\n\n")

	for i := range form.inputs {
		label := fieldLabels[i]
		if i == form.focus {
			sb.WriteString(StyleSelected.String() + label + "\n")
		} else {
			sb.WriteString(StyleUnselected.String() + StyleSubtitle.Render(label) + "\n")
		}
		sb.WriteString("  " + form.inputs[i].View() + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(StyleSubtitle.Render(fmt.Sprintf("Photos: %d", len(form.photos))))
	sb.WriteString("\n")

	if form.err != nil {
		sb.WriteString(StyleError.Render(form.err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(a.helpBar(
		helpEntry("ctrl+s", "save"),
		helpEntry("tab", "next field"),
		helpEntry("ctrl+o", "suggest"),
		helpEntry("ctrl+v", "view photos"),
		helpEntry("ctrl+x", "drop photo"),
		helpEntry("esc", "cancel"),
	))
	return sb.String()
}
