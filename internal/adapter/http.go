package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/utils"
	"github.com/MKhiriev/aegis-vault/models"
)

// Config holds the connection settings of [NewHTTPVaultClient].
type Config struct {
	// Address is the server address, with or without scheme
	// (e.g. "127.0.0.1:8089").
	Address string

	// RequestTimeout bounds every request. Zero means no timeout.
	RequestTimeout time.Duration
}

type httpVaultClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPVaultClient constructs the HTTP implementation of [VaultClient].
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewHTTPVaultClient(cfg Config, logger *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpVaultClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpVaultClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpVaultClient) Register(ctx context.Context, req models.RegisterRequest) (models.Registration, error) {
	var registration models.Registration

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&registration).
		Post("/api/user/register")
	if err != nil {
		return models.Registration{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Registration{}, err
	}

	h.SetToken(registration.Token)
	return registration, nil
}

func (h *httpVaultClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/user/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	if result.TwoFARequired {
		h.logger.Debug().Str("username", req.Username).Msg("second factor required")
		return result, nil
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpVaultClient) VerifySecondFactor(ctx context.Context, req models.SecondFactorRequest) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/user/login/2fa")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("second factor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpVaultClient) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	var list models.CredentialsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/api/credentials/")
	if err != nil {
		return nil, fmt.Errorf("list credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Credentials, nil
}

func (h *httpVaultClient) CreateCredential(ctx context.Context, input models.CredentialInput) (int64, error) {
	var msg models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetBody(input).
		SetResult(&msg).
		Post("/api/credentials/")
	if err != nil {
		return 0, fmt.Errorf("create credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return msg.ID, nil
}

func (h *httpVaultClient) UpdateCredential(ctx context.Context, id int64, input models.CredentialInput) error {
	resp, err := h.authedRequest(ctx).
		SetBody(input).
		Put("/api/credentials/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("update credential request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultClient) DeleteCredential(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/credentials/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete credential request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpVaultClient) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
