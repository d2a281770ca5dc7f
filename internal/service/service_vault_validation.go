package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aegis-vault/internal/validators"
	"github.com/MKhiriev/aegis-vault/models"
)

// VaultValidationService rejects malformed vault commands before they reach
// the wrapped [VaultService]. Every rejection wraps [ErrInvalidDataProvided].
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *VaultValidationService) ListCredentials(ctx context.Context, ownerID int64) ([]models.Credential, error) {
	if err := v.validator.Validate(ctx, models.Credential{UserID: ownerID}, validators.FieldUserID); err != nil {
		return nil, invalid(err)
	}

	return v.inner.ListCredentials(ctx, ownerID)
}

func (v *VaultValidationService) CreateCredential(ctx context.Context, ownerID int64, input models.CredentialInput) (models.Credential, error) {
	if err := v.validator.Validate(ctx, newCredential(0, ownerID, input)); err != nil {
		return models.Credential{}, invalid(err)
	}

	return v.inner.CreateCredential(ctx, ownerID, input)
}

func (v *VaultValidationService) UpdateCredential(ctx context.Context, id, ownerID int64, input models.CredentialInput) (models.Credential, error) {
	credential := newCredential(id, ownerID, input)
	if err := v.validator.Validate(ctx, credential, validators.FieldID); err != nil {
		return models.Credential{}, invalid(err)
	}
	if err := v.validator.Validate(ctx, credential); err != nil {
		return models.Credential{}, invalid(err)
	}

	return v.inner.UpdateCredential(ctx, id, ownerID, input)
}

func (v *VaultValidationService) DeleteCredential(ctx context.Context, id, ownerID int64) error {
	if err := v.validator.Validate(ctx, models.Credential{ID: id, UserID: ownerID}, validators.FieldID, validators.FieldUserID); err != nil {
		return invalid(err)
	}

	return v.inner.DeleteCredential(ctx, id, ownerID)
}

func (v *VaultValidationService) Wrap(wrapped VaultService) VaultService {
	v.inner = wrapped
	return v
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
