package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/aegis-vault/internal/app"
	"github.com/MKhiriev/aegis-vault/internal/service"
	"github.com/MKhiriev/aegis-vault/internal/utils"
	"github.com/MKhiriev/aegis-vault/models"
)

const testOwnerID int64 = 7

const credentialBody = `{"website":"example.com","username":"alice","password":"ciphertext","notes":"n"}`

var wantInput = models.CredentialInput{Website: "example.com", Username: "alice", Password: "ciphertext", Notes: "n"}

func newHandlerWithVault(t *testing.T, vault service.VaultService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{VaultService: vault})
}

// ownedRequest builds a request as the auth middleware would hand it over.
func ownedRequest(method, target, body string, urlParams map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ctx := utils.WithUserID(req.Context(), testOwnerID)
	if len(urlParams) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range urlParams {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// getCredentials
// ─────────────────────────────────────────────

func TestGetCredentials_Success(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	vault := &mockVaultService{
		listFn: func(_ context.Context, ownerID int64) ([]models.Credential, error) {
			assert.Equal(t, testOwnerID, ownerID)
			return []models.Credential{{ID: 1, UserID: testOwnerID, Website: "example.com", Username: "alice", Password: "ct", CreatedAt: now, UpdatedAt: now}}, nil
		},
	}

	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).getCredentials(rec, ownedRequest(http.MethodGet, "/api/credentials/", "", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Credentials []map[string]any `json:"credentials"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Credentials, 1)
	assert.Equal(t, "example.com", got.Credentials[0]["website"])
	assert.Equal(t, "ct", got.Credentials[0]["password"])
	assert.NotContains(t, got.Credentials[0], "user_id")
}

func TestGetCredentials_EmptyVaultIsEmptyArray(t *testing.T) {
	vault := &mockVaultService{
		listFn: func(context.Context, int64) ([]models.Credential, error) { return nil, nil },
	}

	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).getCredentials(rec, ownedRequest(http.MethodGet, "/api/credentials/", "", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"credentials":[]}`, rec.Body.String())
}

func TestGetCredentials_NoOwnerInContext(t *testing.T) {
	vault := &mockVaultService{
		listFn: func(context.Context, int64) ([]models.Credential, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).getCredentials(rec, httptest.NewRequest(http.MethodGet, "/api/credentials/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgUnauthorized, decodeError(t, rec))
}

func TestGetCredentials_StorageError(t *testing.T) {
	vault := &mockVaultService{
		listFn: func(context.Context, int64) ([]models.Credential, error) {
			return nil, fmt.Errorf("%w: connection reset", service.ErrStorage)
		},
	}

	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).getCredentials(rec, ownedRequest(http.MethodGet, "/api/credentials/", "", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeError(t, rec))
}

// ─────────────────────────────────────────────
// createCredential
// ─────────────────────────────────────────────

func TestCreateCredential_Success(t *testing.T) {
	vault := &mockVaultService{
		createFn: func(_ context.Context, ownerID int64, input models.CredentialInput) (models.Credential, error) {
			assert.Equal(t, testOwnerID, ownerID)
			assert.Equal(t, wantInput, input)
			return models.Credential{ID: 42}, nil
		},
	}

	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).createCredential(rec, ownedRequest(http.MethodPost, "/api/credentials/", credentialBody, nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Credential added successfully","id":42}`, rec.Body.String())
}

func TestCreateCredential_IgnoresOwnerInBody(t *testing.T) {
	vault := &mockVaultService{
		createFn: func(_ context.Context, ownerID int64, _ models.CredentialInput) (models.Credential, error) {
			assert.Equal(t, testOwnerID, ownerID)
			return models.Credential{ID: 1}, nil
		},
	}

	body := `{"user_id":999,"website":"w","username":"u","password":"p"}`
	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).createCredential(rec, ownedRequest(http.MethodPost, "/api/credentials/", body, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCredential_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid json", "{", nil, http.StatusBadRequest, app.MsgInvalidJSON},
		{"validation", `{"website":""}`, service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := &mockVaultService{
				createFn: func(context.Context, int64, models.CredentialInput) (models.Credential, error) {
					return models.Credential{}, tt.err
				},
			}

			rec := httptest.NewRecorder()
			newHandlerWithVault(t, vault).createCredential(rec, ownedRequest(http.MethodPost, "/api/credentials/", tt.body, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// updateCredential
// ─────────────────────────────────────────────

func TestUpdateCredential_Success(t *testing.T) {
	vault := &mockVaultService{
		updateFn: func(_ context.Context, id, ownerID int64, input models.CredentialInput) (models.Credential, error) {
			assert.Equal(t, int64(5), id)
			assert.Equal(t, testOwnerID, ownerID)
			assert.Equal(t, wantInput, input)
			return models.Credential{ID: id}, nil
		},
	}

	req := ownedRequest(http.MethodPut, "/api/credentials/5", credentialBody, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).updateCredential(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Credential updated successfully"}`, rec.Body.String())
}

func TestUpdateCredential_NotFound(t *testing.T) {
	vault := &mockVaultService{
		updateFn: func(context.Context, int64, int64, models.CredentialInput) (models.Credential, error) {
			return models.Credential{}, service.ErrCredentialNotFound
		},
	}

	req := ownedRequest(http.MethodPut, "/api/credentials/5", credentialBody, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).updateCredential(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgCredentialNotFound, decodeError(t, rec))
}

func TestUpdateCredential_BadID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", ""} {
		t.Run(id, func(t *testing.T) {
			vault := &mockVaultService{
				updateFn: func(context.Context, int64, int64, models.CredentialInput) (models.Credential, error) {
					t.Fatal("service must not be called")
					return models.Credential{}, nil
				},
			}

			req := ownedRequest(http.MethodPut, "/api/credentials/x", credentialBody, map[string]string{"id": id})
			rec := httptest.NewRecorder()
			newHandlerWithVault(t, vault).updateCredential(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// deleteCredential
// ─────────────────────────────────────────────

func TestDeleteCredential_Success(t *testing.T) {
	vault := &mockVaultService{
		deleteFn: func(_ context.Context, id, ownerID int64) error {
			assert.Equal(t, int64(5), id)
			assert.Equal(t, testOwnerID, ownerID)
			return nil
		},
	}

	req := ownedRequest(http.MethodDelete, "/api/credentials/5", "", map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).deleteCredential(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Credential deleted successfully"}`, rec.Body.String())
}

func TestDeleteCredential_NotFound(t *testing.T) {
	vault := &mockVaultService{
		deleteFn: func(context.Context, int64, int64) error { return service.ErrCredentialNotFound },
	}

	req := ownedRequest(http.MethodDelete, "/api/credentials/5", "", map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	newHandlerWithVault(t, vault).deleteCredential(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
