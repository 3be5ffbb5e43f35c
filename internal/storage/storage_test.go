package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyhuang/stocktake/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		err = db.Close()
		assert.NoError(t, err)
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})
}

func TestDBPath(t *testing.T) {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	defer db.Close()

	// In-memory DB has empty path
	assert.Equal(t, "", db.Path())
}

func TestCheckIntegrity(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.CheckIntegrity())
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "stocktake")
	assert.Contains(t, path, "db")
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestCrudGetSet(t *testing.T) {
	db := setupTestDB(t)

	category := model.NewCategory("c1", "Warehouse A", "")
	require.NoError(t, db.Set(category))

	var loaded model.Category
	require.NoError(t, db.Get(category.Key, &loaded))
	assert.Equal(t, "Warehouse A", loaded.Name)
	assert.Equal(t, "c1", loaded.ID)
}

func TestCrudGetMissing(t *testing.T) {
	db := setupTestDB(t)

	var loaded model.Category
	err := db.Get("category:missing", &loaded)
	assert.True(t, IsErrKeyNotFound(err))
}

func TestCrudDelete(t *testing.T) {
	db := setupTestDB(t)

	category := model.NewCategory("c1", "Warehouse A", "")
	require.NoError(t, db.Set(category))
	require.NoError(t, db.Delete(category.Key))

	exists, err := db.Exists(category.Key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCrudDeleteByPrefix(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 3; i++ {
		a := model.NewAsset(fmt.Sprintf("a%d", i), "c1")
		require.NoError(t, db.Set(a))
	}
	require.NoError(t, db.Set(model.NewCategory("c1", "Kept", "")))

	n, err := db.DeleteByPrefix(model.PrefixAsset + ":")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	keys, err := db.ListByPrefix(model.PrefixCategory + ":")
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

// =============================================================================
// CategoryRepo Tests
// =============================================================================

func TestCategoryRepoCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepo(db)

	category := model.NewCategory(model.NewID(), "Warehouse A", "ground floor")
	require.NoError(t, repo.Create(category))

	loaded, err := repo.Get(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse A", loaded.Name)
	assert.Equal(t, "ground floor", loaded.Description)
}

func TestCategoryRepoGetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepo(db)

	_, err := repo.Get("nope")
	assert.Error(t, err)
}

func TestCategoryRepoListSorted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepo(db)

	for _, name := range []string{"Zulu", "alpha", "Mike"} {
		require.NoError(t, repo.Create(model.NewCategory(model.NewID(), name, "")))
	}

	categories, err := repo.List()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "alpha", categories[0].Name)
	assert.Equal(t, "Mike", categories[1].Name)
	assert.Equal(t, "Zulu", categories[2].Name)
}

func TestCategoryRepoFindByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepo(db)

	category := model.NewCategory(model.NewID(), "Warehouse A", "")
	require.NoError(t, repo.Create(category))

	found, err := repo.FindByName("Warehouse A")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)

	_, err = repo.FindByName("Warehouse B")
	assert.Error(t, err)
}

func TestCategoryRepoDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	categories := NewCategoryRepo(db)
	assets := NewAssetRepo(db)

	kept := model.NewCategory(model.NewID(), "Kept", "")
	doomed := model.NewCategory(model.NewID(), "Doomed", "")
	require.NoError(t, categories.Create(kept))
	require.NoError(t, categories.Create(doomed))

	for i := 0; i < 2; i++ {
		a := model.NewAsset(model.NewID(), doomed.ID)
		a.Name = fmt.Sprintf("Doomed asset %d", i)
		require.NoError(t, assets.Save(a))
	}
	survivor := model.NewAsset(model.NewID(), kept.ID)
	survivor.Name = "Survivor"
	require.NoError(t, assets.Save(survivor))

	require.NoError(t, categories.Delete(doomed.ID, assets))

	_, err := categories.Get(doomed.ID)
	assert.Error(t, err)

	remaining, err := assets.List()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Survivor", remaining[0].Name)
}

// =============================================================================
// AssetRepo Tests
// =============================================================================

func TestAssetRepoSaveStampsTimestamps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepo(db)

	asset := model.NewAsset(model.NewID(), "c1")
	asset.Name = "Laptop"
	require.NoError(t, repo.Save(asset))

	assert.NotZero(t, asset.CreatedAt)
	assert.NotZero(t, asset.UpdatedAt)

	created := asset.CreatedAt
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, repo.Save(asset))

	// CreatedAt is immutable after the first save.
	assert.Equal(t, created, asset.CreatedAt)
	assert.GreaterOrEqual(t, asset.UpdatedAt, created)
}

func TestAssetRepoRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepo(db)

	asset := model.NewAsset(model.NewID(), "c1")
	asset.Name = "Laptop"
	asset.AssetID = "IT-001"
	asset.SerialNumber = "SN123"
	asset.Location = "Room 2"
	asset.Note = "out for repair"
	asset.Photos = [][]byte{{0xff, 0xd8, 0xff}}
	require.NoError(t, repo.Save(asset))

	loaded, err := repo.Get(asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", loaded.Name)
	assert.Equal(t, "IT-001", loaded.AssetID)
	assert.Equal(t, "SN123", loaded.SerialNumber)
	assert.Equal(t, "Room 2", loaded.Location)
	assert.Equal(t, "out for repair", loaded.Note)
	require.Len(t, loaded.Photos, 1)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, loaded.Photos[0])
}

func TestAssetRepoListByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepo(db)

	for i := 0; i < 3; i++ {
		a := model.NewAsset(fmt.Sprintf("a%d", i), "c1")
		a.Name = fmt.Sprintf("Asset %d", i)
		a.CreatedAt = int64(100 + i)
		a.UpdatedAt = a.CreatedAt
		require.NoError(t, repo.Save(a))
	}
	other := model.NewAsset("b0", "c2")
	other.Name = "Other"
	require.NoError(t, repo.Save(other))

	assets, err := repo.ListByCategory("c1")
	require.NoError(t, err)
	require.Len(t, assets, 3)
	// Oldest first.
	assert.Equal(t, "Asset 0", assets[0].Name)
	assert.Equal(t, "Asset 2", assets[2].Name)

	n, err := repo.CountByCategory("c1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestAssetRepoDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepo(db)

	asset := model.NewAsset(model.NewID(), "c1")
	asset.Name = "Laptop"
	require.NoError(t, repo.Save(asset))
	require.NoError(t, repo.Delete(asset.ID))

	_, err := repo.Get(asset.ID)
	assert.Error(t, err)

	assets, err := repo.ListByCategory("c1")
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestAssetRepoDeleteByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepo(db)

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Save(model.NewAsset(fmt.Sprintf("a%d", i), "c1")))
	}
	require.NoError(t, repo.Save(model.NewAsset("b0", "c2")))

	n, err := repo.DeleteByCategory("c1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := repo.List()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "c2", remaining[0].CategoryID)
}

// =============================================================================
// SettingsRepo Tests
// =============================================================================

func TestSettingsRepoGetCreatesSingleton(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	settings, err := repo.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.SavedNames)

	settings.AddName("Laptop")
	require.NoError(t, repo.Update(settings))

	again, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop"}, again.SavedNames)
}

func TestSettingsRepoRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	asset := model.NewAsset(model.NewID(), "c1")
	asset.Name = "Laptop"
	asset.AssetID = "IT-001"
	asset.Location = "Room 2"
	require.NoError(t, repo.Record(asset))

	settings, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop"}, settings.SavedNames)
	assert.Equal(t, []string{"Room 2"}, settings.SavedLocations)
	assert.Equal(t, []string{"IT-"}, settings.SavedPrefixes)
	assert.Equal(t, "IT-", settings.LastUsedPrefix)
	assert.Equal(t, 1, settings.LastUsedSequence)
}

func TestSettingsRepoRecordIgnoresCodeWithoutSequence(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	asset := model.NewAsset(model.NewID(), "c1")
	asset.Name = "Chair"
	asset.AssetID = "MISC"
	require.NoError(t, repo.Record(asset))

	settings, err := repo.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.SavedPrefixes)
	assert.Equal(t, "", settings.LastUsedPrefix)
}
