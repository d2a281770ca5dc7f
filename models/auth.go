package models

// LoginRequest is the input of the login command.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SecondFactorRequest is the input of the verifySecondFactor command.
type SecondFactorRequest struct {
	// TempUserID is the pending-login token returned by login when a second
	// factor is required.
	TempUserID string `json:"temp_user_id"`

	// Code is the 6-digit time-based one-time code.
	Code string `json:"code"`
}

// LoginResult is returned by both login steps.
//
// When TwoFARequired is true, Token is empty and TempUserID carries a
// short-lived pending token that is accepted only by verifySecondFactor.
type LoginResult struct {
	Token          string `json:"token"`
	EncryptionSalt string `json:"encryption_salt"`
	TwoFARequired  bool   `json:"twofa_required"`
	TempUserID     string `json:"temp_user_id,omitempty"`
}

// SecondFactorKey holds a freshly provisioned TOTP secret.
type SecondFactorKey struct {
	// Secret is the base32 encoded shared secret.
	Secret string

	// URI is the otpauth:// provisioning URI.
	URI string
}
