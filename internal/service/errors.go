package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of them,
// so transports can map failures with [errors.Is] without knowing the
// concrete cause.
var (
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("authentication error")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
)

// Validation errors.
var (
	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", ErrValidation)
	ErrDuplicateUser       = fmt.Errorf("%w: username or email is already registered", ErrValidation)
)

// Authentication errors.
var (
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid username or password", ErrAuth)
	ErrInvalidSecondFactor = fmt.Errorf("%w: invalid second factor code", ErrAuth)
	ErrInvalidToken        = fmt.Errorf("%w: invalid token", ErrAuth)
	ErrTokenIsExpired      = fmt.Errorf("%w: token is expired", ErrAuth)
)

// Not found errors.
var (
	ErrCredentialNotFound = fmt.Errorf("%w: credential was not found", ErrNotFound)
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
