package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/suggest"
	"github.com/wyhuang/stocktake/internal/ui"
)

// TestInventoryWorkflow walks the primary user journey end to end:
// create a category, add an asset with full details, search for it,
// search for something absent, then delete and verify the empty state.
func TestInventoryWorkflow(t *testing.T) {
	env := setupEnv(t)

	// Create "Warehouse A".
	category := model.NewCategory(model.NewID(), "Warehouse A", "")
	require.NoError(t, env.categories.Create(category))

	listed, err := env.categories.List()
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// Add a Laptop with code, serial and location.
	asset := model.NewAsset(model.NewID(), category.ID)
	asset.Name = "Laptop"
	asset.AssetID = "IT-001"
	asset.SerialNumber = "SN123"
	asset.Location = "Room 2"
	require.NoError(t, env.assets.Save(asset))
	require.NoError(t, env.settings.Record(asset))

	assets, err := env.assets.ListByCategory(category.ID)
	require.NoError(t, err)
	require.Len(t, assets, 1)

	// Search by code finds it.
	matched := ui.FilterAssets(assets, "IT-001")
	require.Len(t, matched, 1)
	assert.Equal(t, "Laptop", matched[0].Name)

	// A nonexistent term yields an empty result, not an error.
	assert.Empty(t, ui.FilterAssets(assets, "nonexistent"))

	// Delete the asset; the category survives with an empty list.
	require.NoError(t, env.assets.Delete(asset.ID))

	assets, err = env.assets.ListByCategory(category.ID)
	require.NoError(t, err)
	assert.Empty(t, assets)

	listed, err = env.categories.List()
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

// TestSuggestionAccumulation verifies the autocomplete history built up
// across saves in multiple categories.
func TestSuggestionAccumulation(t *testing.T) {
	env := setupEnv(t)

	warehouse := model.NewCategory(model.NewID(), "Warehouse A", "")
	office := model.NewCategory(model.NewID(), "Office", "")
	require.NoError(t, env.categories.Create(warehouse))
	require.NoError(t, env.categories.Create(office))

	save := func(categoryID, name, code, location string) {
		a := model.NewAsset(model.NewID(), categoryID)
		a.Name = name
		a.AssetID = code
		a.Location = location
		require.NoError(t, env.assets.Save(a))
		require.NoError(t, env.settings.Record(a))
	}

	save(warehouse.ID, "Laptop", "IT-001", "Room 2")
	save(warehouse.ID, "Laptop", "IT-002", "Room 2")
	save(office.ID, "Chair", "FURN-001", "Room 5")

	settings, err := env.settings.Get()
	require.NoError(t, err)

	// History is a sorted set across categories; duplicates collapse.
	assert.Equal(t, []string{"Chair", "Laptop"}, settings.SavedNames)
	assert.Equal(t, []string{"Room 2", "Room 5"}, settings.SavedLocations)
	assert.Equal(t, []string{"FURN-", "IT-"}, settings.SavedPrefixes)

	// The next suggested code follows the most recent save.
	assert.Equal(t, "FURN-002", suggest.FromSettings(settings))
}

// TestCascadeDeleteAcrossReopen verifies that deleting a category removes
// its assets from disk, not just from a cached list.
func TestCascadeDeleteAcrossReopen(t *testing.T) {
	env := setupEnv(t)

	doomed := model.NewCategory(model.NewID(), "Doomed", "")
	kept := model.NewCategory(model.NewID(), "Kept", "")
	require.NoError(t, env.categories.Create(doomed))
	require.NoError(t, env.categories.Create(kept))

	for _, categoryID := range []string{doomed.ID, doomed.ID, kept.ID} {
		a := model.NewAsset(model.NewID(), categoryID)
		a.Name = "Asset"
		require.NoError(t, env.assets.Save(a))
	}

	require.NoError(t, env.categories.Delete(doomed.ID, env.assets))

	all, err := env.assets.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].CategoryID)
}
