package auth

import "errors"

// Operation outcomes are returned as values; all of these are recoverable by
// the caller. Validation failures wrap ErrValidation with a specific message.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already registered, please login instead")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
