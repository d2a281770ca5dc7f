package models

import "time"

// User represents a vault owner. It carries the identity attributes used for
// authentication together with the per-user encryption salt the client needs
// to derive its local encryption key.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login name. It is compared case-sensitively
	// and stored exactly as it was given at registration.
	Username string `json:"username"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Password carries the plain-text login password on its way in from the
	// transport layer. It is never persisted or serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the login password.
	PasswordHash string `json:"-"`

	// EncryptionSalt is the hex encoded random salt generated once at
	// registration. It is opaque to the server and immutable.
	EncryptionSalt string `json:"-"`

	// TOTPSecret is the base32 encoded second-factor secret. Empty when the
	// user has not enrolled a second factor.
	TOTPSecret string `json:"-"`

	// LastTOTPStep is the last accepted TOTP time step, used to reject
	// replayed codes. Nil until the first successful verification.
	LastTOTPStep *int64 `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// HasSecondFactor reports whether the user has enrolled a TOTP secret.
func (u User) HasSecondFactor() bool {
	return u.TOTPSecret != ""
}

// RegisterRequest is the input of the registerUser command.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// EnableTwoFactor asks the server to provision a TOTP secret for the new
	// account.
	EnableTwoFactor bool `json:"enable_two_factor,omitempty"`
}

// Registration is the result of a successful registration.
type Registration struct {
	Token          string `json:"token"`
	EncryptionSalt string `json:"encryption_salt"`

	// TwoFASecret is the base32 TOTP secret, present only when a second
	// factor was provisioned.
	TwoFASecret string `json:"twofa_secret,omitempty"`

	// TwoFAURI is the otpauth:// enrollment URI for authenticator apps.
	TwoFAURI string `json:"twofa_uri,omitempty"`
}
