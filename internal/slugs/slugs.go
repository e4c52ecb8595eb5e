// Package slugs provides the two slug strategies used by tempio:
//   - Heading slugs: section IDs for the embedded grammar reference.
//   - Phrase names: keys for saved phrases in config, built on gosimple/slug.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// HeadingSlug converts a heading text to a URL-friendly slug.
func HeadingSlug(text string) string {
	var result strings.Builder
	prevDash := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '-' || r == '_' || r == ':':
			if !prevDash && result.Len() > 0 {
				result.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}

// PhraseName normalizes a saved phrase name: lowercase ASCII words joined by
// single dashes. Underscores count as separators.
func PhraseName(name string) string {
	s := goslug.Make(strings.ReplaceAll(name, "_", " "))
	return strings.Trim(s, "-")
}
