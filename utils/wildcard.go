package utils

import "strings"

// WildcardMatch reports whether value matches pattern, where '*' in the
// pattern matches any run of characters. Matching is case-insensitive. A
// pattern without wildcards requires an exact match.
func WildcardMatch(pattern, value string) bool {
	p := strings.ToLower(pattern)
	v := strings.ToLower(value)

	if !strings.Contains(p, "*") {
		return p == v
	}

	parts := strings.Split(p, "*")
	// Anchor the first and last fragments unless the pattern is open-ended.
	if parts[0] != "" && !strings.HasPrefix(v, parts[0]) {
		return false
	}
	if last := parts[len(parts)-1]; last != "" && !strings.HasSuffix(v, last) {
		return false
	}

	idx := 0
	for _, part := range parts {
		if part == "" {
			continue
		}
		found := strings.Index(v[idx:], part)
		if found < 0 {
			return false
		}
		idx += found + len(part)
	}
	return true
}
