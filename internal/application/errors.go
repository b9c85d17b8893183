package application

import (
	"errors"
	"fmt"

	"spellsheet/internal/codec"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrNothingToSave = errors.New("nothing to save: pick some words first")

	// Import format errors come from the codec unchanged
	ErrInvalidFormat       = codec.ErrInvalidFormat
	ErrUnsupportedFileType = codec.ErrUnsupportedFileType
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistError reports a store write that failed. The in-memory state is
// left as it was before the operation.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
