package source

import "errors"

var (
	// ErrNotFound indicates the referenced object does not exist.
	ErrNotFound = errors.New("source: not found")
	// ErrUnsupportedScheme indicates a URI scheme with no Source implementation.
	ErrUnsupportedScheme = errors.New("source: unsupported scheme")
	// ErrInvalidURI indicates a URI missing a bucket, key or endpoint.
	ErrInvalidURI = errors.New("source: invalid uri")
)
