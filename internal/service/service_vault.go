package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/store"
	"github.com/MKhiriev/aegis-vault/models"
)

type vaultService struct {
	credentialRepository store.CredentialRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewVaultService constructs a [VaultService] over repo. Inputs are not
// validated here; wrap the result with [NewVaultValidationService].
func NewVaultService(repo store.CredentialRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		credentialRepository: repo,
		now:                  time.Now,
		logger:               logger,
	}
}

func (v *vaultService) ListCredentials(ctx context.Context, ownerID int64) ([]models.Credential, error) {
	credentials, err := v.credentialRepository.ListCredentials(ctx, ownerID)
	if err != nil {
		return nil, storageError(err)
	}

	return credentials, nil
}

func (v *vaultService) CreateCredential(ctx context.Context, ownerID int64, input models.CredentialInput) (models.Credential, error) {
	created, err := v.credentialRepository.CreateCredential(ctx, newCredential(0, ownerID, input), v.now())
	if err != nil {
		return models.Credential{}, storageError(err)
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", ownerID).
		Int64("credential_id", created.ID).
		Int("password_len", len(input.Password)).
		Msg("credential created")

	return created, nil
}

func (v *vaultService) UpdateCredential(ctx context.Context, id, ownerID int64, input models.CredentialInput) (models.Credential, error) {
	updated, err := v.credentialRepository.UpdateCredential(ctx, newCredential(id, ownerID, input), v.now())
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return models.Credential{}, ErrCredentialNotFound
		}
		return models.Credential{}, storageError(err)
	}

	return updated, nil
}

func (v *vaultService) DeleteCredential(ctx context.Context, id, ownerID int64) error {
	if err := v.credentialRepository.DeleteCredential(ctx, id, ownerID); err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return ErrCredentialNotFound
		}
		return storageError(err)
	}

	return nil
}

func newCredential(id, ownerID int64, input models.CredentialInput) models.Credential {
	return models.Credential{
		ID:       id,
		UserID:   ownerID,
		Website:  input.Website,
		Username: input.Username,
		Password: input.Password,
		Notes:    input.Notes,
	}
}
