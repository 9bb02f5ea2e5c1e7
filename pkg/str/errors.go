package str

import "errors"

var (
	// ErrEntropyUnavailable is returned when the cryptographically secure
	// random source cannot supply bytes. Callers must propagate it rather
	// than fall back to a weak generator.
	ErrEntropyUnavailable = errors.New("str: secure random source unavailable")
)
