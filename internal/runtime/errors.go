package runtime

import (
	"errors"
	"strings"
	"syscall"

	apperrors "github.com/wyhuang/stocktake/internal/errors"
)

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	return apperrors.GetSuggestion(err)
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}

// IsDiskFullError checks if an error indicates a disk full condition.
// It checks for ENOSPC and common disk full error patterns.
func IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, apperrors.ErrDiskFull) {
		return true
	}

	if errors.Is(err, syscall.ENOSPC) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no space left") ||
		strings.Contains(msg, "disk full")
}

// ClassifyStorageError maps low-level storage failures onto the app's
// sentinel errors so the UI can show a useful suggestion.
func ClassifyStorageError(err error) error {
	if err == nil {
		return nil
	}
	if IsDiskFullError(err) {
		return apperrors.WithContext(apperrors.ErrDiskFull, err.Error())
	}
	if errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM) {
		return apperrors.WithContext(apperrors.ErrPermissionDenied, err.Error())
	}
	return err
}
