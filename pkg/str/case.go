package str

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Converter performs case conversions with per-input memoization.
// It owns three independent caches (studly, camel, snake) that grow for
// the life of the converter and are safe for concurrent use.
// The zero value is ready to use.
type Converter struct {
	studly memo
	camel  memo
	snake  memo
}

// NewConverter returns a Converter with empty caches. Use a dedicated
// converter when cache growth must be scoped (e.g. per tenant or per
// batch job); otherwise the package-level functions share one.
func NewConverter() *Converter {
	return &Converter{}
}

var defaultConverter Converter

// Lower converts s to lower case using Unicode case mapping,
// locale-agnostic.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Upper converts s to upper case using Unicode case mapping,
// locale-agnostic.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Title title-cases s: the first letter of every word is capitalized
// using Unicode word-boundary semantics, the rest lower-cased.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Studly converts s to StudlyCase (PascalCase): "-" and "_" become word
// boundaries, each word is capitalized, separators are removed.
//
//	Studly("foo_bar-baz") // "FooBarBaz"
//
// Results are memoized per distinct input.
func Studly(s string) string { return defaultConverter.Studly(s) }

// Camel converts s to camelCase: Studly with the first character
// lower-cased. Memoized independently of the studly cache.
//
//	Camel("foo_bar-baz") // "fooBarBaz"
func Camel(s string) string { return defaultConverter.Camel(s) }

// Snake converts s to snake_case. See [Converter.SnakeDelim].
func Snake(s string) string { return defaultConverter.Snake(s) }

// SnakeDelim converts s to lower case words joined by delimiter.
// See [Converter.SnakeDelim].
func SnakeDelim(s, delimiter string) string {
	return defaultConverter.SnakeDelim(s, delimiter)
}

// Studly converts s to StudlyCase, memoizing the result.
func (c *Converter) Studly(s string) string {
	return c.studly.get(s, func() string {
		return studlyOf(s)
	})
}

// Camel converts s to camelCase. The studly form is recomputed rather
// than read from the studly cache; only the final camel result is cached.
func (c *Converter) Camel(s string) string {
	return c.camel.get(s, func() string {
		return Lcfirst(studlyOf(s))
	})
}

// Snake converts s to snake_case.
func (c *Converter) Snake(s string) string {
	return c.SnakeDelim(s, "_")
}

// SnakeDelim converts s to lower case words joined by delimiter.
//
// Input consisting entirely of lower-case letters is returned unchanged.
// Otherwise whitespace is removed, delimiter is inserted after every
// character that is immediately followed by an upper-case letter, and the
// result is lower-cased. Capitalized runs split at every letter
// ("FOOBar" → "f_o_o_bar"); no acronym grouping is attempted.
//
// Results are memoized per (input, delimiter) pair.
func (c *Converter) SnakeDelim(s, delimiter string) string {
	// The length prefix makes the key unambiguous even when the input or
	// delimiter contains arbitrary bytes.
	key := strconv.Itoa(len(s)) + ":" + s + delimiter
	return c.snake.get(key, func() string {
		return snakeOf(s, delimiter)
	})
}

var wordSeparators = strings.NewReplacer("-", " ", "_", " ")

// studlyOf is the uncached studly conversion. Word capitalization
// preserves the tail of each word (ucwords semantics): "foo_bAr" becomes
// "FooBAr", not "FooBar".
func studlyOf(s string) string {
	words := wordSeparators.Replace(s)
	words = cases.Title(language.Und, cases.NoLower).String(words)
	return strings.ReplaceAll(words, " ", "")
}

func snakeOf(s, delimiter string) string {
	if allLower(s) {
		return s
	}

	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			runes = append(runes, r)
		}
	}

	var b strings.Builder
	b.Grow(len(s) + len(runes)*len(delimiter))
	for i, r := range runes {
		b.WriteRune(r)
		if i+1 < len(runes) && unicode.IsUpper(runes[i+1]) {
			b.WriteString(delimiter)
		}
	}
	return Lower(b.String())
}

// allLower reports whether s consists entirely of lower-case letters.
// Digits, spaces and punctuation all disqualify, matching ctype-style
// lower-case checks.
func allLower(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
