package draftsmith

import (
	"fmt"
	"strings"
)

// titleSeparator is the exact delimiter the prompt grammar mandates between
// candidate titles.
const titleSeparator = ", "

// ParseTitles splits a raw model response into candidate titles. It is a pure
// split on the literal separator: no per-element trimming or deduplication, so
// it is a left-inverse of strings.Join(titles, ", ") for comma-free titles.
// Count validation is a separate step (ValidateTitleCount).
func ParseTitles(raw string) []string {
	return strings.Split(raw, titleSeparator)
}

// ValidateTitleCount rejects a batch whose size is not exactly titleCount.
// A wrong count means the model ignored the output grammar (or put commas
// inside a title) and the list cannot be trusted.
func ValidateTitleCount(titles []string) error {
	if len(titles) != titleCount {
		return fmt.Errorf("%w: expected %d titles, got %d", ErrMalformedOutput, titleCount, len(titles))
	}
	return nil
}
