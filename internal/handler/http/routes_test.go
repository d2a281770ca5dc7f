package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/service"
	"github.com/MKhiriev/aegis-vault/models"
)

var routesAppConfig = config.App{
	TokenSignKey:         "routes-test-key",
	TokenIssuer:          "routes-test",
	TokenDuration:        time.Hour,
	PendingTokenDuration: time.Minute,
}

// newTestRouter wires the real session service so tokens are verified
// end to end. Vault calls are recorded per owner.
func newTestRouter(t *testing.T) (http.Handler, service.SessionService, *[]int64) {
	t.Helper()

	sessions := service.NewSessionService(routesAppConfig, logger.Nop())
	var owners []int64

	vault := &mockVaultService{
		listFn: func(_ context.Context, ownerID int64) ([]models.Credential, error) {
			owners = append(owners, ownerID)
			return []models.Credential{}, nil
		},
		createFn: func(_ context.Context, ownerID int64, _ models.CredentialInput) (models.Credential, error) {
			owners = append(owners, ownerID)
			return models.Credential{ID: 1}, nil
		},
		updateFn: func(_ context.Context, id, ownerID int64, _ models.CredentialInput) (models.Credential, error) {
			owners = append(owners, ownerID)
			return models.Credential{ID: id}, nil
		},
		deleteFn: func(_ context.Context, _, ownerID int64) error {
			owners = append(owners, ownerID)
			return nil
		},
	}

	auth := &mockAuthService{
		registerUserFn: func(context.Context, models.RegisterRequest) (models.Registration, error) {
			return models.Registration{Token: "t"}, nil
		},
		loginFn: func(context.Context, models.LoginRequest) (models.LoginResult, error) {
			return models.LoginResult{Token: "t"}, nil
		},
		verifySecondFactorFn: func(context.Context, models.SecondFactorRequest) (models.LoginResult, error) {
			return models.LoginResult{Token: "t"}, nil
		},
	}

	h := NewHandler(&service.Services{
		AuthService:    auth,
		SessionService: sessions,
		VaultService:   vault,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h.Init(), sessions, &owners
}

func serve(router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_PublicCommands(t *testing.T) {
	router, _, _ := newTestRouter(t)

	tests := []struct {
		method, target, body string
		wantStatus           int
	}{
		{http.MethodPost, "/api/user/register", `{}`, http.StatusOK},
		{http.MethodPost, "/api/user/login", `{}`, http.StatusOK},
		{http.MethodPost, "/api/user/login/2fa", `{}`, http.StatusOK},
		{http.MethodGet, "/api/version/", "", http.StatusOK},
		{http.MethodGet, "/api/ping", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(router, tt.method, tt.target, tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestRoutes_VaultCommandsRequireSession(t *testing.T) {
	router, sessions, owners := newTestRouter(t)
	ctx := context.Background()

	session, err := sessions.IssueToken(ctx, models.User{UserID: 21})
	require.NoError(t, err)
	pending, err := sessions.IssuePendingToken(ctx, models.User{UserID: 21})
	require.NoError(t, err)

	commands := []struct {
		method, target, body string
		wantStatus           int
	}{
		{http.MethodGet, "/api/credentials/", "", http.StatusOK},
		{http.MethodPost, "/api/credentials/", credentialBody, http.StatusCreated},
		{http.MethodPut, "/api/credentials/1", credentialBody, http.StatusOK},
		{http.MethodDelete, "/api/credentials/1", "", http.StatusOK},
	}

	for _, c := range commands {
		t.Run(c.method+" "+c.target, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, serve(router, c.method, c.target, c.body, "").Code)
			assert.Equal(t, http.StatusUnauthorized, serve(router, c.method, c.target, c.body, pending.String()).Code)
			assert.Equal(t, http.StatusUnauthorized, serve(router, c.method, c.target, c.body, "garbage").Code)
			assert.Equal(t, c.wantStatus, serve(router, c.method, c.target, c.body, session.String()).Code)
		})
	}

	assert.Equal(t, []int64{21, 21, 21, 21}, *owners)
}

func TestRoutes_UnknownRoutesAndMethods(t *testing.T) {
	router, _, _ := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/unknown", "", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/user/login", "", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/api/version/", "", "").Code)

	rec := serve(router, http.MethodGet, "/api/unknown", "", "")
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}
