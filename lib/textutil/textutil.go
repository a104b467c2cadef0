package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldSearch lowercases a string and strips diacritics so that
// "Dembélé" matches "dembele".
func FoldSearch(s string) string {
	folded, _, err := transform.String(unaccent, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

var titleCaser = cases.Title(language.English)

// TitleFromSlug renders a lowercase-hyphen slug as a display name,
// e.g. "john-smith-2" -> "John Smith 2".
func TitleFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}
