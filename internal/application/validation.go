package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"spellsheet/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidatePositive checks that a count is at least one
func ValidatePositive(fieldName string, value int) error {
	if value < 1 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be at least 1, got %d", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidateSettings checks settings bounds declared on domain.Settings
func ValidateSettings(s domain.Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := lowerFirst(fe.Field())
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s fails %s=%s, got %v", formatFieldName(field), fe.Tag(), fe.Param(), fe.Value()),
		}
	}
	return err
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "linesPerWord" -> "lines per word")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"linesPerWord":  "lines per word",
		"excludeRecent": "exclude recent",
		"sheetID":       "sheet ID",
		"wordID":        "word ID",
		"words":         "words",
		"count":         "count",
		"filename":      "filename",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
