package ui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wyhuang/stocktake/internal/errors"
	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/report"
	"github.com/wyhuang/stocktake/internal/runtime"
	"github.com/wyhuang/stocktake/internal/storage"
)

// Messages produced by repository and export commands.
type (
	categoriesLoadedMsg []*model.Category
	assetsLoadedMsg     []*model.Asset
	settingsLoadedMsg   struct{ settings *model.Settings }
	categorySavedMsg    struct{ err error }
	assetSavedMsg       struct{}
	assetDeletedMsg     struct{}
	categoryDeletedMsg  struct{}
	exportDoneMsg       struct {
		path string
		err  error
	}
	errMsg struct{ err error }
)

// Config holds the collaborators for the App model.
type Config struct {
	CategoryRepo *storage.CategoryRepo
	AssetRepo    *storage.AssetRepo
	SettingsRepo *storage.SettingsRepo

	// Renderer produces the export artifact. Substitutable with a fake
	// in tests; nil disables export.
	Renderer report.DocumentRenderer

	// ExportDir is where export artifacts are written. Defaults to the
	// working directory.
	ExportDir string
}

// confirmPrompt asks the user to confirm a destructive action before the
// stored command runs.
type confirmPrompt struct {
	message string
	action  tea.Cmd
}

// App is the top-level bubbletea model. One App value is the whole UI
// state; every transition goes through Update.
type App struct {
	view ViewState

	// In-memory copies of the currently relevant records.
	categories     []*model.Category
	assets         []*model.Asset
	activeCategory *model.Category
	settings       *model.Settings

	// Per-view state.
	catCursor   int
	assetCursor int
	search      searchInput
	modal       *categoryModal
	confirm     *confirmPrompt
	form        *assetForm
	lightbox    Lightbox

	exporting bool
	status    string
	err       error

	width  int
	height int

	// Collaborators.
	categoryRepo *storage.CategoryRepo
	assetRepo    *storage.AssetRepo
	settingsRepo *storage.SettingsRepo
	renderer     report.DocumentRenderer
	exportDir    string
}

// NewApp creates the UI model.
func NewApp(config Config) *App {
	if config.ExportDir == "" {
		config.ExportDir, _ = os.Getwd()
	}
	return &App{
		view:         ViewCategories,
		search:       newSearchInput(),
		categoryRepo: config.CategoryRepo,
		assetRepo:    config.AssetRepo,
		settingsRepo: config.SettingsRepo,
		renderer:     config.Renderer,
		exportDir:    config.ExportDir,
	}
}

// View returns the active view state. Exposed for tests.
func (a *App) ViewState() ViewState {
	return a.view
}

// ActiveCategory returns the currently selected category, nil outside the
// asset views.
func (a *App) ActiveCategory() *model.Category {
	return a.activeCategory
}

// Assets returns the cached, unfiltered asset list of the active category.
func (a *App) Assets() []*model.Asset {
	return a.assets
}

// Init loads the category list and the suggestion history.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCategories(), a.loadSettings())
}

// Update handles messages and updates the model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case categoriesLoadedMsg:
		a.categories = msg
		if a.catCursor >= len(a.categories) {
			a.catCursor = max(0, len(a.categories)-1)
		}
		return a, nil

	case assetsLoadedMsg:
		a.assets = msg
		if a.assetCursor >= len(a.assets) {
			a.assetCursor = max(0, len(a.assets)-1)
		}
		return a, nil

	case settingsLoadedMsg:
		a.settings = msg.settings
		return a, nil

	case categorySavedMsg:
		return a.finishCategorySave(msg.err)

	case assetSavedMsg:
		// Return to the list and re-fetch so it reflects the write.
		a.form = nil
		a.view = ViewAssetList
		a.status = "Asset saved"
		return a, tea.Batch(a.loadActiveAssets(), a.loadSettings())

	case assetDeletedMsg:
		a.status = "Asset deleted"
		return a, a.loadActiveAssets()

	case categoryDeletedMsg:
		a.status = "Category deleted"
		return a, a.loadCategories()

	case exportDoneMsg:
		a.exporting = false
		if msg.err != nil {
			a.err = msg.err
		} else {
			a.status = "Exported " + msg.path
		}
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes keyboard input, overlays first.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keypress clears a stale status or error line.
	a.status = ""
	a.err = nil

	if a.lightbox.IsOpen {
		return a.updateLightbox(msg)
	}
	if a.confirm != nil {
		return a.updateConfirm(msg)
	}
	if a.modal != nil {
		return a.updateCategoryModal(msg)
	}

	switch a.view {
	case ViewCategories:
		return a.updateCategories(msg)
	case ViewAssetList:
		return a.updateAssetList(msg)
	case ViewAssetForm:
		return a.updateAssetForm(msg)
	case ViewSettings:
		return a.updateSettings(msg)
	}
	return a, nil
}

// updateConfirm handles the destructive-action prompt. Declining is a
// silent no-op.
func (a *App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		action := a.confirm.action
		a.confirm = nil
		return a, action
	case "n", "N", "esc":
		a.confirm = nil
		return a, nil
	}
	return a, nil
}

// filteredAssets applies the live search term; the cached list is never
// mutated.
func (a *App) filteredAssets() []*model.Asset {
	return FilterAssets(a.assets, a.search.Value())
}

// Repository commands. Each performs one I/O operation and reports back
// with a message.

func (a *App) loadCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := a.categoryRepo.List()
		if err != nil {
			return errMsg{err}
		}
		return categoriesLoadedMsg(categories)
	}
}

func (a *App) loadActiveAssets() tea.Cmd {
	category := a.activeCategory
	if category == nil {
		return nil
	}
	return func() tea.Msg {
		assets, err := a.assetRepo.ListByCategory(category.ID)
		if err != nil {
			return errMsg{err}
		}
		return assetsLoadedMsg(assets)
	}
}

func (a *App) loadSettings() tea.Cmd {
	return func() tea.Msg {
		settings, err := a.settingsRepo.Get()
		if err != nil {
			return errMsg{err}
		}
		return settingsLoadedMsg{settings}
	}
}

func (a *App) saveCategory(name string) tea.Cmd {
	return func() tea.Msg {
		category := model.NewCategory(model.NewID(), name, "")
		return categorySavedMsg{err: a.categoryRepo.Create(category)}
	}
}

func (a *App) deleteCategory(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.categoryRepo.Delete(id, a.assetRepo); err != nil {
			return errMsg{err}
		}
		return categoryDeletedMsg{}
	}
}

func (a *App) deleteAsset(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.assetRepo.Delete(id); err != nil {
			return errMsg{err}
		}
		return assetDeletedMsg{}
	}
}

func (a *App) saveAsset(asset *model.Asset) tea.Cmd {
	return func() tea.Msg {
		if err := a.assetRepo.Save(asset); err != nil {
			return errMsg{runtime.ClassifyStorageError(err)}
		}
		if err := a.settingsRepo.Record(asset); err != nil {
			return errMsg{err}
		}
		return assetSavedMsg{}
	}
}

// exportActive renders the active category's full asset list. The
// trigger is disabled while an export is in flight.
func (a *App) exportActive() tea.Cmd {
	if a.exporting {
		return nil
	}
	if a.renderer == nil {
		a.err = errors.ErrRendererMissing
		return nil
	}
	category := a.activeCategory
	assets := a.assets
	renderer := a.renderer
	dir := a.exportDir
	a.exporting = true

	return func() tea.Msg {
		doc := report.Build(category, assets)
		data, err := renderer.Render(doc)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path := filepath.Join(dir, report.Filename(category.Name, doc.ExportDate, renderer.Ext()))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return exportDoneMsg{err: runtime.ClassifyStorageError(err)}
		}
		return exportDoneMsg{path: path}
	}
}
