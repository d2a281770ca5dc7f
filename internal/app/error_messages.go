// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// aegis-vault server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. None of them carries an internal error text.
package app

// Failure messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the username or email is already in use.
	MsgUserAlreadyExists = "username or email is already registered"

	// MsgInvalidLoginPassword is returned for an unknown username and for a
	// wrong password alike.
	MsgInvalidLoginPassword = "invalid username or password"

	// MsgInvalidSecondFactor is returned when the one-time code is wrong,
	// stale or already used.
	MsgInvalidSecondFactor = "invalid second factor code"

	// MsgUnauthorized is returned when a protected command arrives without
	// a usable bearer token.
	MsgUnauthorized = "unauthorized"

	// MsgTokenIsExpired is returned when a bearer token is well-formed but
	// its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgInvalidToken is returned when a bearer token cannot be verified.
	MsgInvalidToken = "token is invalid"

	// MsgCredentialNotFound is returned when an update or delete targets a
	// credential that does not exist for the current user.
	MsgCredentialNotFound = "credential not found"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "not found"

	// MsgStorageUnavailable is returned by the health check when the
	// database cannot be reached.
	MsgStorageUnavailable = "storage unavailable"

	MsgInternalServerError = "internal server error"
)

// Confirmation messages of mutating vault commands.
const (
	MsgCredentialAdded   = "Credential added successfully"
	MsgCredentialUpdated = "Credential updated successfully"
	MsgCredentialDeleted = "Credential deleted successfully"
)
