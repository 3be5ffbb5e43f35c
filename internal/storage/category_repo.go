package storage

import (
	"sort"
	"strings"

	"github.com/wyhuang/stocktake/internal/errors"
	"github.com/wyhuang/stocktake/internal/model"
)

// CategoryRepo provides operations for Category entities.
type CategoryRepo struct {
	db *DB
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create stores a new category.
func (r *CategoryRepo) Create(category *model.Category) error {
	category.Key = model.GenerateCategoryKey(category.ID)
	return r.db.Set(category)
}

// Get retrieves a category by id.
func (r *CategoryRepo) Get(id string) (*model.Category, error) {
	category := &model.Category{}
	key := model.GenerateCategoryKey(id)
	if err := r.db.Get(key, category); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// Delete removes a category and cascade-deletes its assets. Leaving
// assets orphaned would make them permanently unreachable through
// category navigation, so they go with the category.
func (r *CategoryRepo) Delete(id string, assets *AssetRepo) error {
	if _, err := assets.DeleteByCategory(id); err != nil {
		return err
	}
	return r.db.Delete(model.GenerateCategoryKey(id))
}

// List retrieves all categories sorted by name, so the order is stable
// across calls absent writes.
func (r *CategoryRepo) List() ([]*model.Category, error) {
	categories, err := GetAllByPrefix(r.db, model.PrefixCategory+":", func() *model.Category {
		return &model.Category{}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(categories, func(i, j int) bool {
		ni, nj := strings.ToLower(categories[i].Name), strings.ToLower(categories[j].Name)
		if ni != nj {
			return ni < nj
		}
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

// Exists checks if a category exists by id.
func (r *CategoryRepo) Exists(id string) (bool, error) {
	return r.db.Exists(model.GenerateCategoryKey(id))
}

// FindByName returns the first category whose name matches exactly.
func (r *CategoryRepo) FindByName(name string) (*model.Category, error) {
	categories, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errors.ErrCategoryNotFound
}
