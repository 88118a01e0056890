package entity

import (
	"fmt"

	"magazine-catalog/internal/utils/text"
)

// Length bounds, counted in characters.
const (
	minMagazineNameLength = 2
	maxMagazineNameLength = 16
	minTitleLength        = 5
	maxTitleLength        = 50
)

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if text.CountRunes(name) == 0 {
		return &ValidationError{Field: "name", Message: "name must be a non-empty string"}
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between 2 and 16 characters.
func ValidateMagazineName(name string) error {
	return validateLength("name", name, minMagazineNameLength, maxMagazineNameLength)
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if text.CountRunes(category) == 0 {
		return &ValidationError{Field: "category", Message: "category must be a non-empty string"}
	}
	return nil
}

// ValidateTitle checks that an article title is between 5 and 50 characters.
func ValidateTitle(title string) error {
	return validateLength("title", title, minTitleLength, maxTitleLength)
}

func validateLength(field, value string, lo, hi int) error {
	n := text.CountRunes(value)
	if n < lo || n > hi {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters, got %d", field, lo, hi, n),
		}
	}
	return nil
}
