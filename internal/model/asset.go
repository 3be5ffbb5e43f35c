package model

import (
	"fmt"
	"time"
)

// Asset is a single tracked physical item. Photos are stored inline as
// self-contained JPEG payloads; the first photo is the list thumbnail.
type Asset struct {
	Key          string   `json:"key"`
	ID           string   `json:"id"`
	CategoryID   string   `json:"category_id"`
	AssetID      string   `json:"asset_id"`
	Name         string   `json:"name"`
	SerialNumber string   `json:"serial_number,omitempty"`
	Location     string   `json:"location,omitempty"`
	Note         string   `json:"note,omitempty"`
	Photos       [][]byte `json:"photos,omitempty"`
	CreatedAt    int64    `json:"created_at"`
	UpdatedAt    int64    `json:"updated_at"`
}

// SetKey sets the database key for this asset.
func (a *Asset) SetKey(key string) {
	a.Key = key
}

// GetKey returns the database key for this asset.
func (a *Asset) GetKey() string {
	return a.Key
}

// GenerateAssetKey generates a database key for an asset.
func GenerateAssetKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixAsset, id)
}

// NewAsset creates a new asset in the given category. Timestamps are set
// by the repository on save.
func NewAsset(id, categoryID string) *Asset {
	return &Asset{
		Key:        GenerateAssetKey(id),
		ID:         id,
		CategoryID: categoryID,
	}
}

// Thumbnail returns the first photo payload, or nil if the asset has no
// photos.
func (a *Asset) Thumbnail() []byte {
	if len(a.Photos) == 0 {
		return nil
	}
	return a.Photos[0]
}

// Created returns the creation time of the asset.
func (a *Asset) Created() time.Time {
	return time.UnixMilli(a.CreatedAt)
}

// Updated returns the last modification time of the asset.
func (a *Asset) Updated() time.Time {
	return time.UnixMilli(a.UpdatedAt)
}
