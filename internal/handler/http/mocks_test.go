package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/service"
	"github.com/MKhiriev/aegis-vault/models"
)

// ─────────────────────────────────────────────
// Service mocks. Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn       func(ctx context.Context, req models.RegisterRequest) (models.Registration, error)
	loginFn              func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	verifySecondFactorFn func(ctx context.Context, req models.SecondFactorRequest) (models.LoginResult, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.Registration, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) VerifySecondFactor(ctx context.Context, req models.SecondFactorRequest) (models.LoginResult, error) {
	return m.verifySecondFactorFn(ctx, req)
}

type mockSessionService struct {
	resolveFn func(ctx context.Context, token string) (int64, error)
}

func (m *mockSessionService) IssueToken(context.Context, models.User) (models.Token, error) {
	return models.Token{}, nil
}

func (m *mockSessionService) IssuePendingToken(context.Context, models.User) (models.Token, error) {
	return models.Token{}, nil
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (int64, error) {
	return m.resolveFn(ctx, token)
}

func (m *mockSessionService) ResolvePending(context.Context, string) (int64, error) {
	return 0, service.ErrInvalidToken
}

type mockVaultService struct {
	listFn   func(ctx context.Context, ownerID int64) ([]models.Credential, error)
	createFn func(ctx context.Context, ownerID int64, input models.CredentialInput) (models.Credential, error)
	updateFn func(ctx context.Context, id, ownerID int64, input models.CredentialInput) (models.Credential, error)
	deleteFn func(ctx context.Context, id, ownerID int64) error
}

func (m *mockVaultService) ListCredentials(ctx context.Context, ownerID int64) ([]models.Credential, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockVaultService) CreateCredential(ctx context.Context, ownerID int64, input models.CredentialInput) (models.Credential, error) {
	return m.createFn(ctx, ownerID, input)
}

func (m *mockVaultService) UpdateCredential(ctx context.Context, id, ownerID int64, input models.CredentialInput) (models.Credential, error) {
	return m.updateFn(ctx, id, ownerID, input)
}

func (m *mockVaultService) DeleteCredential(ctx context.Context, id, ownerID int64) error {
	return m.deleteFn(ctx, id, ownerID)
}

type mockAppInfoService struct {
	version string
	pingErr error
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Ping(context.Context) error {
	return m.pingErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services == nil {
		services = &service.Services{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(services, config.Server{}, logger.Nop())
}
