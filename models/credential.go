package models

import "time"

// Credential is a stored vault entry owned by exactly one user.
//
// Password holds ciphertext produced by the client with a key derived from
// the owner's encryption salt. The server treats it as an opaque payload and
// never decrypts or logs it.
type Credential struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Website   string    `json:"website"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CredentialInput carries the client-editable fields of a [Credential] for
// create and update commands.
type CredentialInput struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}
