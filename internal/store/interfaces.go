package store

import (
	"context"
	"time"

	"github.com/MKhiriev/aegis-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A uniqueness violation yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// ExistsByUsernameOrEmail reports whether any account uses username or email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// FindUserByUsername looks a user up by exact, case-sensitive username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks a user up by id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// AdvanceTOTPStep records step as the last accepted TOTP step of the user
	// only if it is greater than the stored one. Otherwise it returns
	// [ErrTOTPStepNotAdvanced].
	AdvanceTOTPStep(ctx context.Context, userID int64, step int64) error
}

// CredentialRepository persists credentials. Every method is scoped by owner.
type CredentialRepository interface {
	// ListCredentials returns the credentials of userID ordered by id.
	ListCredentials(ctx context.Context, userID int64) ([]models.Credential, error)

	// CreateCredential inserts credential with both timestamps set to now.
	CreateCredential(ctx context.Context, credential models.Credential, now time.Time) (models.Credential, error)

	// UpdateCredential replaces the editable fields of the credential with
	// credential.ID owned by credential.UserID.
	UpdateCredential(ctx context.Context, credential models.Credential, now time.Time) (models.Credential, error)

	// DeleteCredential removes the credential id owned by userID.
	DeleteCredential(ctx context.Context, id, userID int64) error
}
