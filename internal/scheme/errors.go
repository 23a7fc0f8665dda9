package scheme

import "errors"

var (
	// ErrEmptyKey is returned when a keystream primitive receives a zero-length key.
	ErrEmptyKey = errors.New("empty key")
	// ErrUnsupported is returned when a key or parameter length is rejected by the
	// underlying cipher. The trial is recorded as failed; sibling trials continue.
	ErrUnsupported = errors.New("unsupported key or parameter length")
	// ErrUnknownScheme is returned when a requested scheme name is not in the registry.
	ErrUnknownScheme = errors.New("unknown scheme")
)
