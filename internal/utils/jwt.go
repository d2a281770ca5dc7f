package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/aegis-vault/models"
)

// Token validation errors. [ValidateAndParseJWTToken] wraps every failure in
// one of them so callers can tell an expired token from a forged one.
var (
	ErrJWTInvalid = errors.New("invalid token")
	ErrJWTExpired = errors.New("token is expired")
)

// JWTParams holds the parameters of a token to be issued.
type JWTParams struct {
	Issuer   string
	Audience string
	UserID   int64
	Duration time.Duration
	SignKey  string
	Now      time.Time
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): the flow the token may be used for
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): params.Now
//   - ExpiresAt (exp): params.Now plus params.Duration
//   - ID        (jti): a fresh UUIDv7
//
// Issuer, audience, a positive duration and the sign key are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.JWTParams{
//	    Issuer: "aegis-vault", Audience: models.AudienceSession,
//	    UserID: 42, Duration: time.Hour, SignKey: "secret", Now: time.Now(),
//	})
func GenerateJWTToken(params JWTParams) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.Duration <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	claims := jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Audience:  jwt.ClaimStrings{params.Audience},
		Subject:   strconv.FormatInt(params.UserID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        NewUUIDGenerator().Generate(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString, UserID: params.UserID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key, HS256 only
//   - Issuer (iss) and audience (aud) claim checks
//   - Expiration (exp) claim check against now
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Expired tokens yield [ErrJWTExpired]; every other failure yields [ErrJWTInvalid].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, audience string, now time.Time) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, fmt.Errorf("%w: empty token", ErrJWTInvalid)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	var token models.Token
	if _, err := parser.ParseWithClaims(tokenString, &token, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrJWTExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrJWTInvalid, err)
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrJWTInvalid, err)
	}

	token.SignedString = tokenString
	token.UserID = userID

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}
