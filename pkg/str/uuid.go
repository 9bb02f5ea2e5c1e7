package str

import (
	"errors"

	"github.com/google/uuid"
)

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}

// UUIDv7 returns a time-ordered (version 7) UUID string. Unlike UUID,
// consecutive values sort by creation time, which keeps index pages warm
// when used as database keys. The error wraps [ErrEntropyUnavailable] if
// the secure random source fails.
func UUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Join(ErrEntropyUnavailable, err)
	}
	return id.String(), nil
}
