// Package str provides Unicode-aware string utilities: case conversion
// with memoization, predicates, length-bounded truncation, secure random
// strings, constant-time comparison, and small rune-based helpers.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/textkit/pkg/str"
//
//	str.Studly("user_profile_image") // "UserProfileImage"
//	str.Camel("user_profile_image")  // "userProfileImage"
//	str.Snake("UserProfileImage")    // "user_profile_image"
//
// # Case Conversion
//
// Studly, Camel and Snake memoize their results process-wide, keyed by
// the exact input (plus the delimiter for Snake). The caches are
// append-only and a hit always equals fresh computation. When cache
// growth must be scoped, own a [Converter] instead of using the
// package-level functions:
//
//	conv := str.NewConverter()
//	conv.Snake("WidgetOption") // "widget_option"
//
// Snake splits at every character followed by an upper-case letter, so
// capitalized runs separate letter by letter ("FOOBar" → "f_o_o_bar").
// Input that is entirely lower-case letters is returned as-is.
//
// # Predicates
//
// Contains, StartsWith and EndsWith check a set of needles (logical OR)
// on code-point boundaries; empty needles never match. Is performs
// anchored glob matching where "*" spans anything:
//
//	str.StartsWith("foobar", []string{"bar", "foo"}) // true
//	str.Is("admin/*", "admin/users")                 // true
//
// # Truncation
//
// Limit cuts by display width (wide CJK runes count two units), Words by
// whitespace-delimited tokens; both trim trailing whitespace and append
// an ellipsis only when something was actually cut:
//
//	str.Limit("The quick brown fox", 9) // "The quick..."
//	str.Words("one two three", 2)       // "one two..."
//
// # Randomness and Comparison
//
// Random draws from crypto/rand and never degrades to a weak source; on
// entropy failure it returns an error wrapping ErrEntropyUnavailable.
// Equals compares in constant time for use with secrets:
//
//	token, err := str.Random(32)
//	if str.Equals(token, presented) { ... }
//
// # Identifiers and Markdown
//
// UUID/UUIDv7 generate identifiers for option keys and records; Markdown
// and MarkdownSanitized render CommonMark, the latter stripping markup
// unsafe for untrusted input.
//
// All functions are safe for concurrent use.
package str
