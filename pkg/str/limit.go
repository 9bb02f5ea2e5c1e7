package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Limit truncates value to at most limit display-width units, appending
// "..." when truncation occurs. See [LimitWith].
func Limit(value string, limit int) string {
	return LimitWith(value, limit, "...")
}

// LimitWith truncates value to at most limit display-width units and
// appends end. East-Asian wide and fullwidth runes count as two units,
// everything else as one, so limits line up with rendered columns in
// variable-width scripts. Input at or under the limit is returned
// unchanged; otherwise the cut never splits a rune and trailing
// whitespace is trimmed before end is appended.
func LimitWith(value string, limit int, end string) string {
	w := 0
	for i, r := range value {
		rw := runeWidth(r)
		if w+rw > limit {
			return strings.TrimRightFunc(value[:i], unicode.IsSpace) + end
		}
		w += rw
	}
	return value
}

// Width returns the display width of value in terminal-style units:
// East-Asian wide and fullwidth runes count 2, all others 1.
func Width(value string) int {
	w := 0
	for _, r := range value {
		w += runeWidth(r)
	}
	return w
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// WordsWith truncates value to at most n whitespace-delimited words,
// appending end when truncation occurs. Input with n or fewer words, or
// whose first n words already span the whole string, is returned
// unchanged. Values of n below 1 are treated as 1.
func WordsWith(value string, n int, end string) string {
	if n < 1 {
		n = 1
	}

	i := 0
	skipSpace := func() {
		for i < len(value) {
			r, size := utf8.DecodeRuneInString(value[i:])
			if !unicode.IsSpace(r) {
				return
			}
			i += size
		}
	}
	skipWord := func() {
		for i < len(value) {
			r, size := utf8.DecodeRuneInString(value[i:])
			if unicode.IsSpace(r) {
				return
			}
			i += size
		}
	}

	skipSpace()
	if i >= len(value) {
		// Empty or all-whitespace input has nothing to truncate.
		return value
	}
	for range n {
		skipWord()
		skipSpace()
		if i >= len(value) {
			// The words consume the entire string.
			return value
		}
	}

	return strings.TrimRightFunc(value[:i], unicode.IsSpace) + end
}

// Words truncates value to at most n whitespace-delimited words,
// appending "..." when truncation occurs. See [WordsWith].
func Words(value string, n int) string {
	return WordsWith(value, n, "...")
}
