package auth

import "errors"

var (
	// ErrInvalidToken is returned when the provided bearer token fails validation.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidSubject is returned when a validated token carries no usable subject claim.
	ErrInvalidSubject = errors.New("invalid subject claim")
)
