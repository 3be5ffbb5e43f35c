// Package errors provides consistent error types for the Stocktake CLI.
// It defines two main categories: UserError (fixable by the user) and
// SystemError (environment or storage issues).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNameTooLong        = errors.New("name too long")
	ErrInvalidAssetCode   = errors.New("invalid asset code")
	ErrNoCategorySelected = errors.New("no category selected")
	ErrUnsupportedImage   = errors.New("unsupported image format")
	ErrNoPhotos           = errors.New("asset has no photos")
	ErrRendererMissing    = errors.New("document renderer unavailable")
	ErrExportInProgress   = errors.New("an export is already in progress")
	ErrDiskFull           = errors.New("disk full")
	ErrDatabaseCorrupted  = errors.New("database corrupted")
	ErrPermissionDenied   = errors.New("permission denied")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required arguments, incorrect format.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// AsUserError returns the UserError in err's chain, if any.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: disk full, database corruption, unreadable image file.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// AsSystemError returns the SystemError in err's chain, if any.
func AsSystemError(err error) (*SystemError, bool) {
	var se *SystemError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrAssetNotFound)
}
