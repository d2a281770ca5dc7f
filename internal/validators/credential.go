package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/aegis-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the identifier of a stored credential.
	FieldID = "id"

	// FieldUserID targets the owner identifier of a credential.
	FieldUserID = "user_id"

	// FieldWebsite targets the site or service the credential belongs to.
	FieldWebsite = "website"

	// FieldUsername targets the account name stored in the credential.
	FieldUsername = "username"

	// FieldPassword targets the encrypted password payload.
	FieldPassword = "password"

	// FieldNotes targets the free-form notes; only the length is checked.
	FieldNotes = "notes"
)

// Upper bounds on field sizes, in bytes.
const (
	MaxTextLength    = 1024
	MaxPayloadLength = 16 * 1024
)

var defaultCredentialFields = []string{FieldUserID, FieldWebsite, FieldUsername, FieldPassword, FieldNotes}

// CredentialValidator implements [Validator] for [models.Credential] and
// [models.CredentialInput].
type CredentialValidator struct{}

func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When fields is empty, owner, website, username,
// password and notes are checked; a [models.CredentialInput] has no owner
// so [FieldUserID] and [FieldID] are skipped for it.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(value, fields...)
	case *models.Credential:
		return v.validateCredential(*value, fields...)

	case models.CredentialInput:
		return v.validateInput(value, fields...)
	case *models.CredentialInput:
		return v.validateInput(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultCredentialFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if c.ID <= 0 {
				return ErrInvalidID
			}
		case FieldUserID:
			if c.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			input := models.CredentialInput{Website: c.Website, Username: c.Username, Password: c.Password, Notes: c.Notes}
			if err := v.validateInputField(input, f); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *CredentialValidator) validateInput(input models.CredentialInput, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultCredentialFields[1:]
	}

	for _, f := range fields {
		if f == FieldUserID || f == FieldID {
			continue
		}
		if err := v.validateInputField(input, f); err != nil {
			return err
		}
	}

	return nil
}

func (v *CredentialValidator) validateInputField(input models.CredentialInput, field string) error {
	switch field {
	case FieldWebsite:
		return requireText(input.Website, ErrEmptyWebsite, MaxTextLength)
	case FieldUsername:
		return requireText(input.Username, ErrEmptyUsername, MaxTextLength)
	case FieldPassword:
		return requireText(input.Password, ErrEmptyPassword, MaxPayloadLength)
	case FieldNotes:
		if len(input.Notes) > MaxPayloadLength {
			return ErrFieldIsTooLong
		}
		return nil
	default:
		return ErrUnknownField
	}
}

func requireText(value string, emptyErr error, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return emptyErr
	}
	if len(value) > maxLength {
		return ErrFieldIsTooLong
	}
	return nil
}
