package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/logger"
)

type appInfoService struct {
	appVersion string
	pinger     Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, pinger Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Ping reports whether the storage behind the service is reachable.
func (s *appInfoService) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}

	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Ping").Msg("storage is unreachable")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return nil
}
