// Package validate provides input validation helpers for the Stocktake CLI.
package validate

import (
	"regexp"
	"strings"

	"github.com/wyhuang/stocktake/internal/errors"
)

const (
	// MaxNameLength is the maximum length for category and asset names.
	MaxNameLength = 128
	// MaxAssetCodeLength is the maximum length for a user-facing asset code.
	MaxAssetCodeLength = 64
	// MaxLocationLength is the maximum length for a location.
	MaxLocationLength = 128
	// MaxNoteLength is the maximum length for a note.
	MaxNoteLength = 4096
)

// assetCodeRegex validates asset codes (alphanumeric, dashes, underscores, periods).
var assetCodeRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Name validates a category or asset display name. The name is expected
// to be trimmed already.
func Name(name string) error {
	if name == "" {
		return errors.ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Name too long",
			"Names must be 128 characters or fewer")
	}
	return nil
}

// AssetCode validates a user-facing asset code. Empty codes are allowed;
// uniqueness is advisory and never enforced.
func AssetCode(code string) error {
	if code == "" {
		return nil
	}
	if len(code) > MaxAssetCodeLength {
		return errors.NewUserErrorWithField("asset code", code,
			"Asset code too long",
			"Asset codes must be 64 characters or fewer")
	}
	if !assetCodeRegex.MatchString(code) {
		return errors.NewUserErrorWithField("asset code", code,
			"Invalid asset code format",
			"Asset codes must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods")
	}
	return nil
}

// Location validates a location string.
func Location(location string) error {
	if len(location) > MaxLocationLength {
		return errors.NewUserErrorWithField("location", location,
			"Location too long",
			"Locations must be 128 characters or fewer")
	}
	return nil
}

// Note validates a free-text note.
func Note(note string) error {
	if len(note) > MaxNoteLength {
		return errors.NewUserError("Note too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}

// CategoryName trims and validates a category name, returning the
// cleaned value.
func CategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := Name(name); err != nil {
		return "", err
	}
	return name, nil
}
