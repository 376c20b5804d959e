package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName returns the comparison key for a record name: surrounding
// whitespace trimmed and Unicode case folded.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// TitleCase formats an identifier such as a collection name for display
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Named is implemented by records identified by a name
type Named interface {
	RecordName() string
}

// FilterByName returns the records whose name matches name after trimming and case folding
func FilterByName[T Named](records []T, name string) []T {
	key := NormalizeName(name)
	matches := make([]T, 0)
	for _, r := range records {
		if NormalizeName(r.RecordName()) == key {
			matches = append(matches, r)
		}
	}
	return matches
}

// IndexByName returns the index of the first record matching name, or -1
func IndexByName[T Named](records []T, name string) int {
	key := NormalizeName(name)
	for i, r := range records {
		if NormalizeName(r.RecordName()) == key {
			return i
		}
	}
	return -1
}
