package domain

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares word texts for display order and selection tie-breaks.
// *collate.Collator satisfies it.
type Collator interface {
	CompareString(a, b string) int
}

// NewCollator returns a locale-aware collator for the given BCP 47 tag.
// Unknown or empty tags fall back to English.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.English
	}
	return collate.New(tag)
}

func compareText(c Collator, a, b string) int {
	if c == nil {
		return strings.Compare(a, b)
	}
	return c.CompareString(a, b)
}
