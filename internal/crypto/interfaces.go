package crypto

import (
	"time"

	"github.com/MKhiriev/aegis-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	// Hash returns the bcrypt hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] otherwise.
	Compare(hash, password string) error
}

// SaltGenerator produces per-user encryption salts.
type SaltGenerator interface {
	// GenerateEncryptionSalt returns 16 random bytes, hex encoded.
	GenerateEncryptionSalt() (string, error)
}

// OTPService provisions and validates time-based one-time passwords
// (6 digits, SHA1, 30 second period).
type OTPService interface {
	// Generate creates a new secret for accountName.
	Generate(accountName string) (models.SecondFactorKey, error)

	// Validate checks code against secret at now, tolerating the configured
	// number of steps of clock skew in either direction. On success it
	// returns the time step the code belongs to.
	Validate(secret, code string, now time.Time) (step int64, ok bool)
}
