package domain

import "errors"

// Domain errors.
var (
	ErrEmptyUsername  = errors.New("username cannot be empty")
	ErrMalformedEvent = errors.New("malformed event")
)
