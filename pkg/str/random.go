package str

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
)

var base64Cleaner = strings.NewReplacer("/", "", "+", "", "=", "")

// Random returns a cryptographically secure random string of exactly
// length characters drawn from [A-Za-z0-9]. Bytes come from the
// platform's secure source, base64-encoded with "/", "+" and "="
// stripped; sampling repeats until enough characters are produced.
//
// A non-positive length yields an empty string. If the secure source
// fails, the error wraps [ErrEntropyUnavailable]; there is no fallback
// to a weak generator.
func Random(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	var b strings.Builder
	b.Grow(length)
	for b.Len() < length {
		buf := make([]byte, length)
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Join(ErrEntropyUnavailable, err)
		}

		chunk := base64Cleaner.Replace(base64.StdEncoding.EncodeToString(buf))
		if remain := length - b.Len(); len(chunk) > remain {
			chunk = chunk[:remain]
		}
		b.WriteString(chunk)
	}
	return b.String(), nil
}

// MustRandom is Random for initialization paths; it panics if the secure
// random source is unavailable.
func MustRandom(length int) string {
	s, err := Random(length)
	if err != nil {
		panic(err)
	}
	return s
}

// Equals compares two strings in constant time for equal-length inputs,
// so the comparison duration does not leak where they first differ.
// Strings of different lengths compare false.
func Equals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
