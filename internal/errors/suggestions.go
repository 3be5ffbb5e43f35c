package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrCategoryNotFound:   "Use 'stocktake category list' to see available categories.",
	ErrAssetNotFound:      "Use 'stocktake asset list <category>' to see available assets.",
	ErrEmptyName:          "Provide a non-empty name.",
	ErrNameTooLong:        "Use a shorter name (128 characters or fewer).",
	ErrInvalidAssetCode:   "Asset codes may contain letters, numbers, dashes and periods.",
	ErrNoCategorySelected: "Select a category first.",
	ErrUnsupportedImage:   "Only JPEG and PNG images are accepted.",
	ErrNoPhotos:           "Attach a photo with --photo on 'stocktake asset edit'.",

	// System errors
	ErrRendererMissing:   "PDF export is unavailable in this build; try --format html.",
	ErrExportInProgress:  "Wait for the current export to finish.",
	ErrDiskFull:          "Free up disk space and try again.",
	ErrDatabaseCorrupted: "The database failed an integrity check; restore from a backup.",
	ErrPermissionDenied:  "Check file permissions in your data directory (~/.local/share/stocktake/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}
