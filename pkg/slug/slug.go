package slug

import (
	"strings"
	"unicode"

	"github.com/dmitrymomot/textkit/pkg/str"
	"github.com/dmitrymomot/textkit/pkg/translit"
)

// Make generates a URL-safe slug from arbitrary text.
//
// The pipeline: custom replacements and character stripping, ASCII
// folding via the transliteration table, lower-casing (unless disabled),
// then a filter pass that turns "-", "_", whitespace and separator
// characters into single separators, keeps letters and digits, and drops
// everything else. Leading and trailing separators are trimmed.
//
// Input that folds to nothing yields an empty slug (unless a suffix
// option adds one); callers must handle empty results. Random suffixes
// draw from the platform's secure source and panic if it is unavailable.
func Make(value string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s := value
	for from, to := range o.replacements {
		s = strings.ReplaceAll(s, from, to)
	}
	if o.stripChars != "" {
		s = deleteAnyOf(s, o.stripChars)
	}

	s = translit.ToASCII(s)
	if o.lowercase {
		s = strings.ToLower(s)
	}
	s = filter(s, o.separator)

	suffixLen := 0
	if o.suffixLength > 0 {
		suffixLen = o.suffixLength
	}
	if suffixLen == 0 && isReserved(s, o.reserved) {
		suffixLen = defaultSuffixLength
	}
	if suffixLen > 0 {
		s = appendSuffix(s, suffixLen, o)
	}

	if o.maxLength > 0 {
		if suffixLen > 0 {
			s = truncatePreservingSuffix(s, o.maxLength, suffixLen, o.separator)
		} else {
			s = truncate(s, o.maxLength, o.separator)
		}
	}

	if o.minLength > 0 && len([]rune(s)) < o.minLength {
		s = appendSuffix(s, defaultSuffixLength, o)
		if o.maxLength > 0 {
			s = truncate(s, o.maxLength, o.separator)
		}
	}

	return s
}

// filter performs the separator-normalization pass over folded ASCII
// input: "-", "_", whitespace and any rune of the separator itself
// collapse into a single separator between kept runes; letters and
// digits are kept; everything else is dropped. The result carries no
// leading or trailing separator.
func filter(s, separator string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r) || (separator != "" && strings.ContainsRune(separator, r)):
			pending = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pending && b.Len() > 0 {
				b.WriteString(separator)
			}
			pending = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

func deleteAnyOf(s, chars string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(chars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isReserved(s string, reserved map[string]struct{}) bool {
	if len(reserved) == 0 {
		return false
	}
	_, ok := reserved[strings.ToLower(s)]
	return ok
}

func appendSuffix(s string, length int, o *options) string {
	suffix := randomSuffix(length, o.lowercase)
	if s == "" {
		return suffix
	}
	return s + o.separator + suffix
}

// randomSuffix draws a crypto-secure alphanumeric suffix. It panics if
// the secure random source is unavailable; there is no weak fallback.
func randomSuffix(length int, lowercase bool) string {
	if length <= 0 {
		return ""
	}
	s := str.MustRandom(length)
	if lowercase {
		s = strings.ToLower(s)
	}
	return s
}

// truncate cuts s to at most max runes and trims any trailing separator
// left at the cut.
func truncate(s string, max int, separator string) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return trimTrailingSeparator(string(runes[:max]), separator)
}

// truncatePreservingSuffix shortens the base so that base + separator +
// suffix fits in max runes, keeping the suffix intact. When max leaves no
// room for any base, the (possibly cut) suffix alone is returned.
func truncatePreservingSuffix(s string, max, suffixLen int, separator string) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	suffix := runes[len(runes)-suffixLen:]
	if max <= suffixLen {
		return string(suffix[:max])
	}

	sepLen := len([]rune(separator))
	room := max - suffixLen - sepLen
	if room < 0 {
		room = 0
	}
	base := runes[:len(runes)-suffixLen-sepLen]
	if len(base) > room {
		base = base[:room]
	}

	trimmed := trimTrailingSeparator(string(base), separator)
	return trimmed + separator + string(suffix)
}

// trimTrailingSeparator removes whole trailing separators only. A rune
// cutset would also eat legitimate suffix characters when the separator
// shares runes with the suffix alphabet.
func trimTrailingSeparator(s, separator string) string {
	if separator == "" {
		return s
	}
	for strings.HasSuffix(s, separator) {
		s = s[:len(s)-len(separator)]
	}
	return s
}
