package codebook

import "errors"

var (
	// ErrMalformedHeader indicates the header record is missing fields or holds
	// a non-numeric dimension.
	ErrMalformedHeader = errors.New("codebook: malformed header")
	// ErrMalformedInput indicates missing data records or a non-numeric vector token.
	ErrMalformedInput = errors.New("codebook: malformed input")
)
