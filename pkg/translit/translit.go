package translit

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// replacer compiles the fold table into a single-pass string replacer.
// strings.Replacer resolves overlapping patterns in argument order, which
// preserves the table's enumeration order.
var replacer = sync.OnceValue(func() *strings.Replacer {
	n := 0
	for _, m := range foldTable {
		n += len(m.variants)
	}
	pairs := make([]string, 0, n*2)
	for _, m := range foldTable {
		for _, v := range m.variants {
			pairs = append(pairs, v, m.ascii)
		}
	}
	return strings.NewReplacer(pairs...)
})

// foldChain strips combining marks: NFD decomposition, remove Mn, NFC
// recomposition. A fresh chain per borrower keeps transformer state private.
var foldChainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	},
}

// ToASCII folds s to printable ASCII (0x20–0x7E).
//
// The fold runs in three stages: table substitution in definition order,
// combining-mark removal for characters the table does not cover, then
// deletion of every remaining rune outside the printable ASCII range
// (control characters included).
//
// The empty string folds to itself, and input that is already printable
// ASCII is returned unchanged.
func ToASCII(s string) string {
	if s == "" {
		return ""
	}
	if isPrintableASCII(s) {
		return s
	}

	s = replacer().Replace(s)
	if !isPrintableASCII(s) {
		s = Fold(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Fold strips combining diacritical marks without guaranteeing ASCII
// output: characters with no decomposition ("ø", "ß", CJK, emoji) pass
// through unchanged. Invalid UTF-8 sequences are left as-is.
func Fold(s string) string {
	if s == "" {
		return ""
	}

	t := foldChainPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		foldChainPool.Put(t)
	}()

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// isPrintableASCII reports whether s consists only of bytes in 0x20–0x7E.
func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
