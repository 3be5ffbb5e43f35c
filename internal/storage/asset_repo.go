package storage

import (
	"sort"
	"time"

	"github.com/wyhuang/stocktake/internal/errors"
	"github.com/wyhuang/stocktake/internal/model"
)

// AssetRepo provides operations for Asset entities.
type AssetRepo struct {
	db *DB
}

// NewAssetRepo creates a new asset repository.
func NewAssetRepo(db *DB) *AssetRepo {
	return &AssetRepo{db: db}
}

// Save inserts or replaces an asset by id. UpdatedAt is stamped on every
// save; CreatedAt only when the asset has never been stored.
func (r *AssetRepo) Save(asset *model.Asset) error {
	now := time.Now().UnixMilli()
	if asset.CreatedAt == 0 {
		asset.CreatedAt = now
	}
	asset.UpdatedAt = now
	asset.Key = model.GenerateAssetKey(asset.ID)
	return r.db.Set(asset)
}

// Get retrieves an asset by id.
func (r *AssetRepo) Get(id string) (*model.Asset, error) {
	asset := &model.Asset{}
	key := model.GenerateAssetKey(id)
	if err := r.db.Get(key, asset); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, errors.ErrAssetNotFound
		}
		return nil, err
	}
	return asset, nil
}

// Delete removes one asset by id.
func (r *AssetRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateAssetKey(id))
}

// ListByCategory retrieves all assets belonging to the given category,
// sorted by creation time then id for a stable order.
func (r *AssetRepo) ListByCategory(categoryID string) ([]*model.Asset, error) {
	all, err := GetAllByPrefix(r.db, model.PrefixAsset+":", func() *model.Asset {
		return &model.Asset{}
	})
	if err != nil {
		return nil, err
	}

	var assets []*model.Asset
	for _, a := range all {
		if a.CategoryID == categoryID {
			assets = append(assets, a)
		}
	}

	sort.Slice(assets, func(i, j int) bool {
		if assets[i].CreatedAt != assets[j].CreatedAt {
			return assets[i].CreatedAt < assets[j].CreatedAt
		}
		return assets[i].ID < assets[j].ID
	})
	return assets, nil
}

// List retrieves all assets across categories.
func (r *AssetRepo) List() ([]*model.Asset, error) {
	return GetAllByPrefix(r.db, model.PrefixAsset+":", func() *model.Asset {
		return &model.Asset{}
	})
}

// DeleteByCategory removes every asset in the given category, returning
// the number of assets deleted.
func (r *AssetRepo) DeleteByCategory(categoryID string) (int, error) {
	assets, err := r.ListByCategory(categoryID)
	if err != nil {
		return 0, err
	}
	for _, a := range assets {
		if err := r.db.Delete(a.Key); err != nil {
			return 0, err
		}
	}
	return len(assets), nil
}

// CountByCategory returns the number of assets in a category.
func (r *AssetRepo) CountByCategory(categoryID string) (int, error) {
	assets, err := r.ListByCategory(categoryID)
	if err != nil {
		return 0, err
	}
	return len(assets), nil
}
