package service

import (
	"fmt"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/crypto"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	VaultService   VaultService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	sessions := NewSessionService(cfg.App, logger)

	appInfo, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			sessions,
			crypto.NewPasswordHasher(cfg.App.BcryptCost),
			crypto.NewSaltGenerator(),
			crypto.NewOTPService(cfg.App.TOTPIssuer, cfg.App.TOTPSkew),
			cfg.App,
			logger,
		),
		SessionService: sessions,
		VaultService:   NewVaultValidationService().Wrap(NewVaultService(storages.CredentialRepository, logger)),
		AppInfoService: appInfo,
	}, nil
}
