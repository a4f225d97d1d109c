package media

import "strings"

// MatchesPattern reports whether a file name matches a tab pattern. Matching
// is a case-insensitive substring test against the name, so "mp4", ".mp4",
// and "holiday" all behave the way users expect.
func MatchesPattern(name, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
}

// MatchingTabs returns the patterns a file name matches, preserving the
// caller's pattern order. Duplicate patterns collapse to one entry.
func MatchingTabs(name string, patterns []string) []string {
	var matched []string
	seen := make(map[string]struct{}, len(patterns))
	for _, pattern := range patterns {
		key := strings.ToLower(strings.TrimSpace(pattern))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if MatchesPattern(name, pattern) {
			matched = append(matched, pattern)
		}
	}
	return matched
}
