package projection

import "strings"

// Matches reports whether term occurs case-insensitively in any of values.
// An empty term matches everything.
func Matches(term string, values ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
