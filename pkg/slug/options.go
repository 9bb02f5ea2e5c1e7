package slug

import "strings"

// defaultSuffixLength is used when a random suffix is required (reserved
// slug hit or MinLength padding) without an explicit WithSuffix length.
const defaultSuffixLength = 6

type options struct {
	separator    string
	stripChars   string
	replacements map[string]string
	reserved     map[string]struct{}
	maxLength    int
	minLength    int
	suffixLength int
	lowercase    bool
}

// Option configures slug generation.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		separator: "-",
		lowercase: true,
	}
}

// Separator sets the string placed between words. It may be empty
// (words are joined directly) or multi-character.
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Lowercase controls case conversion; it defaults to true.
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// MaxLength limits the slug to n runes. When a random suffix is in play
// the base is truncated first so the suffix survives intact. Zero or
// negative disables the limit.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// MinLength pads slugs shorter than n runes with a random suffix.
// Zero or negative disables the padding.
func MinLength(n int) Option {
	return func(o *options) {
		o.minLength = n
	}
}

// StripChars removes the given characters from the input before any
// other processing.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace substitutes strings before slugification, e.g.
// {"&": "and"}.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// separated from the base by the separator. Zero or negative disables it.
func WithSuffix(length int) Option {
	return func(o *options) {
		o.suffixLength = length
	}
}

// ReservedSlugs declares slugs that must not be produced as-is
// (case-insensitive). A generated slug matching one of them gets a
// random suffix appended.
func ReservedSlugs(slugs ...string) Option {
	return func(o *options) {
		if len(slugs) == 0 {
			return
		}
		if o.reserved == nil {
			o.reserved = make(map[string]struct{}, len(slugs))
		}
		for _, s := range slugs {
			o.reserved[strings.ToLower(s)] = struct{}{}
		}
	}
}
