package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidID      = errors.New("invalid credential ID")
	ErrEmptyWebsite   = errors.New("website is required")
	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrFieldIsTooLong = errors.New("field exceeds maximum length")
)
