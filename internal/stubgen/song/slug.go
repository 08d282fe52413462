package song

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// ToSlug converts a string to a URL-safe slug.
// Lowercase, replace non-alphanumeric with hyphens, trim leading/trailing hyphens.
func ToSlug(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// TitleFromSlug turns a hyphenated slug back into a display title by
// title-casing each word: "my-cool-song" -> "My Cool Song".
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
