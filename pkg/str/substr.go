package str

import (
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/translit"
)

// Length returns the number of runes in value, not bytes.
func Length(value string) int {
	return utf8.RuneCountInString(value)
}

// Substr returns the portion of value starting at rune index start with
// at most length runes. A negative start counts from the end of the
// string; a negative length leaves that many runes off the end. Out-of-
// range combinations yield an empty string.
func Substr(value string, start, length int) string {
	runes := []rune(value)
	n := len(runes)

	if start < 0 {
		start = n + start
		if start < 0 {
			start = 0
		}
	}
	if start >= n {
		return ""
	}

	end := start + length
	if length < 0 {
		end = n + length
	}
	if end > n {
		end = n
	}
	if end <= start {
		return ""
	}
	return string(runes[start:end])
}

// Ucfirst upper-cases the first rune of value.
func Ucfirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError && size <= 1 {
		return value
	}
	return string(unicode.ToUpper(r)) + value[size:]
}

// Lcfirst lower-cases the first rune of value.
func Lcfirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError && size <= 1 {
		return value
	}
	return string(unicode.ToLower(r)) + value[size:]
}

// Ascii folds value to printable ASCII via the transliteration table.
// See [translit.ToASCII].
func Ascii(value string) string {
	return translit.ToASCII(value)
}
