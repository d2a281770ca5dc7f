package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by [PasswordHasher.Compare] when the
	// password does not match the hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong is returned when a password exceeds the 72 bytes
	// bcrypt takes into account.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)
