package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Slugify lowercases a name and reduces it to ASCII letters, digits and
// single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NewSlug derives a unique slug from a name. The random suffix makes
// collisions between identically named items vanishingly unlikely even under
// concurrent creation.
func NewSlug(name string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	base := Slugify(name)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
