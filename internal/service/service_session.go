package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/utils"
	"github.com/MKhiriev/aegis-vault/models"
)

// sessionService issues HS256 JWTs. Session and pending tokens share the key
// and issuer and differ by audience and lifetime.
type sessionService struct {
	tokenSignKey string
	tokenIssuer  string

	tokenDuration        time.Duration
	pendingTokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewSessionService constructs a [SessionService] from the token settings in cfg.
func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		pendingTokenDuration: cfg.PendingTokenDuration,
		now:                  time.Now,
		logger:               logger,
	}
}

func (s *sessionService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	return s.issue(ctx, user, models.AudienceSession, s.tokenDuration)
}

func (s *sessionService) IssuePendingToken(ctx context.Context, user models.User) (models.Token, error) {
	return s.issue(ctx, user, models.AudienceSecondFactor, s.pendingTokenDuration)
}

func (s *sessionService) issue(ctx context.Context, user models.User, audience string, duration time.Duration) (models.Token, error) {
	if user.UserID <= 0 {
		return models.Token{}, fmt.Errorf("%w: user has no id", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   s.tokenIssuer,
		Audience: audience,
		UserID:   user.UserID,
		Duration: duration,
		SignKey:  s.tokenSignKey,
		Now:      s.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.issue").Str("aud", audience).Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (int64, error) {
	return s.resolve(ctx, token, models.AudienceSession)
}

func (s *sessionService) ResolvePending(ctx context.Context, token string) (int64, error) {
	return s.resolve(ctx, token, models.AudienceSecondFactor)
}

func (s *sessionService) resolve(ctx context.Context, tokenString, audience string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, audience, s.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*sessionService.resolve").Str("aud", audience).Msg("token rejected")
		if errors.Is(err, utils.ErrJWTExpired) {
			return 0, ErrTokenIsExpired
		}
		return 0, ErrInvalidToken
	}

	if token.UserID <= 0 {
		return 0, ErrInvalidToken
	}

	return token.UserID, nil
}
