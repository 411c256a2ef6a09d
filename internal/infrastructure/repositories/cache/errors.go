package cache

import "errors"

var (
	// ErrKeyNotFound indicates the key was never stored or was deleted.
	ErrKeyNotFound = errors.New("cache: key not found")

	// ErrKeyExpired indicates the key exists but its TTL has elapsed.
	ErrKeyExpired = errors.New("cache: key expired")
)

// IsMiss reports whether an error from Get is a normal cache miss rather
// than a backend failure.
func IsMiss(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrKeyExpired)
}
