package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/store"
	"github.com/MKhiriev/aegis-vault/models"
)

func newIntegrationServices(t *testing.T) *Services {
	t.Helper()

	cfg := &config.StructuredConfig{
		App: testAppConfig,
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "vault.db"),
		}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	return services
}

func register(t *testing.T, s *Services, username string) (ownerID int64, reg models.Registration) {
	t.Helper()
	ctx := context.Background()

	reg, err := s.AuthService.RegisterUser(ctx, models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "pw-" + username,
	})
	require.NoError(t, err)

	ownerID, err = s.SessionService.Resolve(ctx, reg.Token)
	require.NoError(t, err)

	return ownerID, reg
}

func TestIntegration_Registration(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, first := register(t, s, "alice")
	assert.Len(t, first.EncryptionSalt, 32)

	_, err := s.AuthService.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation, "same username")

	_, err = s.AuthService.RegisterUser(ctx, models.RegisterRequest{Username: "alicia", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation, "same email")

	// the first account still signs in with its own password and salt
	res, err := s.AuthService.Login(ctx, models.LoginRequest{Username: "alice", Password: "pw-alice"})
	require.NoError(t, err)
	assert.Equal(t, first.EncryptionSalt, res.EncryptionSalt)
	assert.False(t, res.TwoFARequired)
	assert.NotEmpty(t, res.Token)
}

func TestIntegration_LoginFailures(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()
	register(t, s, "alice")

	res, err := s.AuthService.Login(ctx, models.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuth)
	assert.Empty(t, res.Token)

	_, err = s.AuthService.Login(ctx, models.LoginRequest{Username: "Alice", Password: "pw-alice"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "usernames are case-sensitive")

	_, err = s.AuthService.Login(ctx, models.LoginRequest{Username: "nobody", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIntegration_SecondFactor(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	reg, err := s.AuthService.RegisterUser(ctx, models.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "pw", EnableTwoFactor: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, reg.TwoFASecret)
	assert.Contains(t, reg.TwoFAURI, "otpauth://totp/")

	res, err := s.AuthService.Login(ctx, models.LoginRequest{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	require.True(t, res.TwoFARequired)
	assert.Empty(t, res.Token)

	_, err = s.SessionService.Resolve(ctx, res.TempUserID)
	assert.ErrorIs(t, err, ErrInvalidToken, "pending token must not resolve to a session")

	_, err = s.AuthService.VerifySecondFactor(ctx, models.SecondFactorRequest{TempUserID: res.TempUserID, Code: "000000x"})
	assert.ErrorIs(t, err, ErrAuth)

	code, err := totp.GenerateCode(reg.TwoFASecret, time.Now())
	require.NoError(t, err)

	verified, err := s.AuthService.VerifySecondFactor(ctx, models.SecondFactorRequest{TempUserID: res.TempUserID, Code: code})
	require.NoError(t, err)
	assert.False(t, verified.TwoFARequired)
	assert.Equal(t, reg.EncryptionSalt, verified.EncryptionSalt)

	ownerID, err := s.SessionService.Resolve(ctx, verified.Token)
	require.NoError(t, err)
	_, err = s.VaultService.ListCredentials(ctx, ownerID)
	assert.NoError(t, err)

	_, err = s.AuthService.VerifySecondFactor(ctx, models.SecondFactorRequest{TempUserID: res.TempUserID, Code: code})
	assert.ErrorIs(t, err, ErrInvalidSecondFactor, "a code is accepted once")
}

func TestIntegration_OwnerIsolation(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	ownerA, _ := register(t, s, "alice")
	ownerB, _ := register(t, s, "bob")

	created, err := s.VaultService.CreateCredential(ctx, ownerA, testInput)
	require.NoError(t, err)

	listB, err := s.VaultService.ListCredentials(ctx, ownerB)
	require.NoError(t, err)
	assert.Empty(t, listB)

	_, err = s.VaultService.UpdateCredential(ctx, created.ID, ownerB, testInput)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.VaultService.DeleteCredential(ctx, created.ID, ownerB), ErrNotFound)

	_, err = s.VaultService.UpdateCredential(ctx, created.ID, ownerA, testInput)
	assert.NoError(t, err)
	assert.NoError(t, s.VaultService.DeleteCredential(ctx, created.ID, ownerA))

	_, err = s.VaultService.UpdateCredential(ctx, 9999, ownerA, testInput)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.VaultService.DeleteCredential(ctx, 9999, ownerB), ErrNotFound)
}

func TestIntegration_CredentialRoundTrip(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()
	ownerID, _ := register(t, s, "alice")

	created, err := s.VaultService.CreateCredential(ctx, ownerID, testInput)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	list, err := s.VaultService.ListCredentials(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, testInput.Website, got.Website)
	assert.Equal(t, testInput.Username, got.Username)
	assert.Equal(t, testInput.Password, got.Password)
	assert.Equal(t, testInput.Notes, got.Notes)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))

	time.Sleep(2 * time.Millisecond)

	changed := testInput
	changed.Notes = "rotated"
	updated, err := s.VaultService.UpdateCredential(ctx, created.ID, ownerID, changed)
	require.NoError(t, err)
	assert.Equal(t, "rotated", updated.Notes)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.True(t, updated.CreatedAt.Equal(got.CreatedAt))

	_, err = s.VaultService.CreateCredential(ctx, ownerID, models.CredentialInput{Website: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
