// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the vault server's HTTP command
// surface.
//
// The primary abstraction is [VaultClient]. Error values defined in errors.go
// are mapped from HTTP status codes by mapHTTPError, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/aegis-vault/models"
)

// VaultClient speaks the vault command surface. Implementations keep the
// session token of the last successful sign-in and attach it to every
// vault command.
type VaultClient interface {
	// SetToken stores the bearer token attached to subsequent vault commands.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and stores the returned session token.
	Register(ctx context.Context, req models.RegisterRequest) (models.Registration, error)

	// Login verifies the password. The session token is stored only when no
	// second factor is required; otherwise the result carries TempUserID
	// for VerifySecondFactor.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// VerifySecondFactor completes a pending login and stores the session token.
	VerifySecondFactor(ctx context.Context, req models.SecondFactorRequest) (models.LoginResult, error)

	ListCredentials(ctx context.Context) ([]models.Credential, error)
	CreateCredential(ctx context.Context, input models.CredentialInput) (int64, error)
	UpdateCredential(ctx context.Context, id int64, input models.CredentialInput) error
	DeleteCredential(ctx context.Context, id int64) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Ping reports whether the server and its storage are reachable.
	Ping(ctx context.Context) error
}
