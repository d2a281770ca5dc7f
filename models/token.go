package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token audiences. A token is accepted only by the flow its audience names.
const (
	// AudienceSession marks a full session token that authorizes vault commands.
	AudienceSession = "session"

	// AudienceSecondFactor marks a pending-login token that is accepted only
	// by the second-factor verification step.
	AudienceSecondFactor = "second-factor"
)

// Token wraps a JWT with convenience accessors for authentication flows.
//
// It embeds [jwt.RegisteredClaims] so that it can be passed directly to
// [jwt.ParseWithClaims] as the claims destination.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be handed to the client.
//
// UserID is a parsed copy of the "sub" claim.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim and
// parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
