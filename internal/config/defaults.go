// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the configuration applied to every field that no source
// has set. The token sign key has no default and must always be provided.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "aegis-vault",
			TokenDuration:        2 * time.Hour,
			PendingTokenDuration: 5 * time.Minute,
			BcryptCost:           10,
			TOTPIssuer:           "Aegis",
			TOTPSkew:             1,
			LogLevel:             "info",
			Version:              "N/A",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverSQLite,
				DSN:          "aegis.db",
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
		},
		Server: Server{
			HTTPAddress:     "127.0.0.1:8089",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
