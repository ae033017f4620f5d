package services

import "github.com/go-faster/errors"

// Upstream failure taxonomy. Callers classify with errors.Is.
var (
	// ErrNetwork means the upstream was unreachable or answered a non-success status.
	ErrNetwork = errors.New("catalog upstream unavailable")
	// ErrParse means the upstream answered a body that is not the expected JSON shape.
	ErrParse = errors.New("catalog upstream returned malformed data")
	// ErrNotFound means the requested product is absent upstream.
	ErrNotFound = errors.New("product not found")
	// ErrInvalidID means a product identifier is not a positive integer.
	ErrInvalidID = errors.New("product id must be a positive integer")
)
