package str

import (
	"regexp"
	"strings"
)

// Contains reports whether haystack contains any of the needles.
// An empty needle never matches. Matching is case-sensitive.
func Contains(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// StartsWith reports whether haystack begins with any of the needles.
// An empty needle never matches.
func StartsWith(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.HasPrefix(haystack, n) {
			return true
		}
	}
	return false
}

// EndsWith reports whether haystack ends with any of the needles.
// An empty needle never matches.
func EndsWith(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.HasSuffix(haystack, n) {
			return true
		}
	}
	return false
}

// Is reports whether value matches pattern. A pattern without wildcards
// must equal value exactly; "*" matches zero or more of any character,
// newlines included. The match is anchored at both ends and must consume
// the whole value.
func Is(pattern, value string) bool {
	if pattern == value {
		return true
	}

	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, `\*`, `.*`)

	matched, err := regexp.MatchString(`(?s)\A`+quoted+`\z`, value)
	return err == nil && matched
}
