package service

import (
	"context"

	"github.com/MKhiriev/aegis-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and runs both login steps.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.Registration, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	VerifySecondFactor(ctx context.Context, req models.SecondFactorRequest) (models.LoginResult, error)
}

// SessionService issues and resolves signed tokens.
//
// Session tokens authorize vault commands; pending tokens only carry a user
// between the two login steps. Neither is accepted in place of the other.
type SessionService interface {
	IssueToken(ctx context.Context, user models.User) (models.Token, error)
	IssuePendingToken(ctx context.Context, user models.User) (models.Token, error)

	// Resolve returns the owner id of a session token. It fails closed with
	// [ErrInvalidToken] or [ErrTokenIsExpired].
	Resolve(ctx context.Context, token string) (int64, error)

	// ResolvePending is Resolve for pending second-factor tokens.
	ResolvePending(ctx context.Context, token string) (int64, error)
}

// VaultService performs owner-scoped credential operations. ownerID always
// comes from a resolved session token.
type VaultService interface {
	ListCredentials(ctx context.Context, ownerID int64) ([]models.Credential, error)
	CreateCredential(ctx context.Context, ownerID int64, input models.CredentialInput) (models.Credential, error)
	UpdateCredential(ctx context.Context, id, ownerID int64, input models.CredentialInput) (models.Credential, error)
	DeleteCredential(ctx context.Context, id, ownerID int64) error
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}

// AppInfoService reports build and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}

// Pinger is implemented by storages able to report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
