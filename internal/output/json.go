package output

import (
	"time"

	"github.com/wyhuang/stocktake/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// CategoryOutput represents a category in JSON output.
type CategoryOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AssetCount  int    `json:"asset_count"`
}

// AssetOutput represents an asset in JSON output. Photo payloads are
// reported by count, not embedded.
type AssetOutput struct {
	ID           string `json:"id"`
	CategoryID   string `json:"category_id"`
	AssetID      string `json:"asset_id,omitempty"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number,omitempty"`
	Location     string `json:"location,omitempty"`
	Note         string `json:"note,omitempty"`
	PhotoCount   int    `json:"photo_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// NewAssetOutput creates an AssetOutput from an Asset.
func NewAssetOutput(a *model.Asset) *AssetOutput {
	return &AssetOutput{
		ID:           a.ID,
		CategoryID:   a.CategoryID,
		AssetID:      a.AssetID,
		Name:         a.Name,
		SerialNumber: a.SerialNumber,
		Location:     a.Location,
		Note:         a.Note,
		PhotoCount:   len(a.Photos),
		CreatedAt:    a.Created().Format(time.RFC3339),
		UpdatedAt:    a.Updated().Format(time.RFC3339),
	}
}

// CategoriesResponse represents the category list output in JSON.
type CategoriesResponse struct {
	Categories []*CategoryOutput `json:"categories"`
	Count      int               `json:"count"`
}

// AssetsResponse represents the asset list output in JSON.
type AssetsResponse struct {
	CategoryID string         `json:"category_id"`
	Assets     []*AssetOutput `json:"assets"`
	Count      int            `json:"count"`
}

// SettingsResponse represents the settings output in JSON.
type SettingsResponse struct {
	SavedNames     []string `json:"saved_names"`
	SavedLocations []string `json:"saved_locations"`
	SavedPrefixes  []string `json:"saved_prefixes"`
	NextAssetCode  string   `json:"next_asset_code,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError prints an error response.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(&ErrorResponse{
		Status:     status,
		Error:      message,
		Suggestion: suggestion,
	})
}

// PrintCategories prints a category list response.
func (j *JSONFormatter) PrintCategories(categories []*model.Category, counts map[string]int) error {
	resp := &CategoriesResponse{Count: len(categories)}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, &CategoryOutput{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			AssetCount:  counts[c.ID],
		})
	}
	return j.JSON(resp)
}

// PrintAssets prints an asset list response.
func (j *JSONFormatter) PrintAssets(categoryID string, assets []*model.Asset) error {
	resp := &AssetsResponse{CategoryID: categoryID, Count: len(assets)}
	for _, a := range assets {
		resp.Assets = append(resp.Assets, NewAssetOutput(a))
	}
	return j.JSON(resp)
}
