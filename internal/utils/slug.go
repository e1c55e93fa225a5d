package utils

import "strings"

// Slugify derives a URL-safe identifier from a movie title. The result is
// lowercase, contains only ASCII letters, digits and hyphens, and never has
// leading, trailing or doubled hyphens. Titles that normalize to the same
// string therefore collide on the unique slug column.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			// every run of non-alphanumerics collapses to one hyphen
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
