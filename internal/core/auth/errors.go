package auth

import "errors"

// Authentication errors. All map to 401; invalid and unknown keys share one
// message so responses never confirm whether a key exists.
var (
	ErrMissingKey      = errors.New("authorization required")
	ErrMalformedHeader = errors.New("malformed Authorization header")
	ErrInvalidKey      = errors.New("invalid API key")
)
