// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the number of bytes bcrypt uses from its input.
const MaxPasswordLength = 72

const saltLength = 16

type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a bcrypt [PasswordHasher] with the given cost.
func NewPasswordHasher(cost int) PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (b *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}

	return fmt.Errorf("%w: %w", ErrPasswordMismatch, err)
}

type saltGenerator struct {
	random io.Reader
}

// NewSaltGenerator constructs a [SaltGenerator] reading from crypto/rand.
func NewSaltGenerator() SaltGenerator {
	return &saltGenerator{random: rand.Reader}
}

func (s *saltGenerator) GenerateEncryptionSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(s.random, salt); err != nil {
		return "", fmt.Errorf("error generating encryption salt: %w", err)
	}

	return hex.EncodeToString(salt), nil
}
