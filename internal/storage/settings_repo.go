package storage

import (
	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/suggest"
)

// SettingsRepo provides operations for the Settings singleton.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get retrieves the settings, creating the singleton if it doesn't exist.
func (r *SettingsRepo) Get() (*model.Settings, error) {
	record, _, err := r.db.GetOrCreate(model.KeySettings, &model.Settings{}, func() model.Model {
		return model.NewSettings()
	})
	if err != nil {
		return nil, err
	}
	return record.(*model.Settings), nil
}

// Update replaces the settings record.
func (r *SettingsRepo) Update(settings *model.Settings) error {
	return r.db.Set(settings)
}

// Record accumulates autocomplete history from a saved asset. Names,
// locations and code prefixes are added to their sets; the last used
// prefix and sequence are remembered for next-code suggestions.
func (r *SettingsRepo) Record(asset *model.Asset) error {
	settings, err := r.Get()
	if err != nil {
		return err
	}

	settings.AddName(asset.Name)
	settings.AddLocation(asset.Location)

	if prefix, seq, ok := suggest.SplitCode(asset.AssetID); ok {
		settings.AddPrefix(prefix)
		settings.LastUsedPrefix = prefix
		settings.LastUsedSequence = seq
	}

	return r.Update(settings)
}
