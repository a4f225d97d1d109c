package textutil

import "strings"

// Slug converts a tab pattern into a lowercase directory-safe name. Letters
// are lowercased, digits and hyphens are kept, runs of separator characters
// collapse into a single hyphen, everything else is dropped. A leading dot
// (extension patterns such as ".mp4") is stripped before conversion.
// Returns fallback when nothing survives.
func Slug(value, fallback string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, ".")
	var b strings.Builder
	lastHyphen := false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastHyphen = false
		case r == '-' || r == '_' || r == ' ' || r == '.':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// drop other runes
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return fallback
	}
	return out
}
