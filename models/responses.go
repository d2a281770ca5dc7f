package models

// CredentialsResponse is the body of a successful getCredentials command.
type CredentialsResponse struct {
	Credentials []Credential `json:"credentials"`
}

// MessageResponse is the confirmation body of mutating commands.
type MessageResponse struct {
	Message string `json:"message"`

	// ID is the identifier of the created credential; omitted for updates
	// and deletes.
	ID int64 `json:"id,omitempty"`
}

// ErrorResponse is the single opaque failure body every command returns.
type ErrorResponse struct {
	Error string `json:"error"`
}
