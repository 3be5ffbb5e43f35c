package ui

import (
	"strings"

	"github.com/wyhuang/stocktake/internal/model"
)

// MatchAsset reports whether the case-folded search term is a substring
// of at least one of the asset's name, code, location or serial number.
// An empty term matches everything.
func MatchAsset(a *model.Asset, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.Name), term) ||
		strings.Contains(strings.ToLower(a.AssetID), term) ||
		strings.Contains(strings.ToLower(a.Location), term) ||
		strings.Contains(strings.ToLower(a.SerialNumber), term)
}

// FilterAssets returns the assets matching the search term. The input
// slice is never mutated; an empty term returns a copy of the full list.
func FilterAssets(assets []*model.Asset, term string) []*model.Asset {
	filtered := make([]*model.Asset, 0, len(assets))
	for _, a := range assets {
		if MatchAsset(a, term) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
