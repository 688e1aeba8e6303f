package application

import (
	"fmt"
	"strings"
)

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

// ValidateSingleLine rejects values that would break a line-oriented file
func ValidateSingleLine(fieldName, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a single line", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateYear checks that a start year is plausible for the listing
func ValidateYear(year int) error {
	if year < 1900 || year > 9999 {
		return &ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("invalid year: %d", year),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "dirPath" -> "directory path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"dirPath":  "directory path",
		"fileURL":  "file URL",
		"startURL": "start URL",
		"baseURL":  "base URL",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
