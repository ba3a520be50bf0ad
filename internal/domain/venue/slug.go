package venue

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify lowercases the name and collapses every run of non-alphanumeric
// characters into a single hyphen.
func Slugify(name string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII, unicode.IsDigit(r) && r < unicode.MaxASCII:
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// GenerateSlug produces a unique slug for a display name. taken holds the
// slugs already in use; current is the entity's own prior slug (empty on
// create) so an unchanged name stays idempotent on update. The first
// collision gets suffix "-2", then "-3", and so on.
func GenerateSlug(name string, taken map[string]bool, current string) string {
	base := Slugify(name)
	slug := base
	counter := 1
	for taken[slug] && slug != current {
		counter++
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
	return slug
}
