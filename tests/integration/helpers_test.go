// Package integration exercises full inventory workflows against a real
// in-memory database.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wyhuang/stocktake/internal/storage"
)

// env bundles a database with its repositories.
type env struct {
	db         *storage.DB
	categories *storage.CategoryRepo
	assets     *storage.AssetRepo
	settings   *storage.SettingsRepo
}

// setupEnv creates an in-memory database and its repositories.
func setupEnv(t *testing.T) *env {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		db.Close()
	})
	return &env{
		db:         db,
		categories: storage.NewCategoryRepo(db),
		assets:     storage.NewAssetRepo(db),
		settings:   storage.NewSettingsRepo(db),
	}
}
