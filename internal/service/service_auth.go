package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/crypto"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/store"
	"github.com/MKhiriev/aegis-vault/models"
)

// dummyPassword is hashed once and compared against on logins for unknown
// usernames, so both failure paths cost one bcrypt comparison.
const dummyPassword = "aegis-vault-unknown-user"

// authService is the concrete implementation of AuthService.
// It handles user registration, password verification and the second-factor
// step using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions issues session tokens and pending second-factor tokens.
	sessions SessionService

	hasher crypto.PasswordHasher
	salts  crypto.SaltGenerator
	otp    crypto.OTPService

	// enrollTwoFactor forces TOTP provisioning for every new account.
	enrollTwoFactor bool

	dummyHashOnce sync.Once
	dummyHash     string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and security primitives.
//
// The returned service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	sessions SessionService,
	hasher crypto.PasswordHasher,
	salts crypto.SaltGenerator,
	otp crypto.OTPService,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:  userRepository,
		sessions:        sessions,
		hasher:          hasher,
		salts:           salts,
		otp:             otp,
		enrollTwoFactor: cfg.EnrollTwoFactor,
		now:             time.Now,
		logger:          logger,
	}
}

// RegisterUser creates a new user account and signs it in.
//
// Returns:
//   - ErrInvalidDataProvided if a field is empty or the password is too long.
//   - ErrDuplicateUser if username or email is taken. The storage UNIQUE
//     constraints decide; the pre-check only avoids hashing for nothing.
//   - a storage error wrapping ErrStorage on any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.Registration, error) {
	log := logger.FromContext(ctx)

	if err := validateRegisterRequest(req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data")
		return models.Registration{}, err
	}

	exists, err := a.userRepository.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user existence check failed")
		return models.Registration{}, storageError(err)
	}
	if exists {
		return models.Registration{}, ErrDuplicateUser
	}

	salt, err := a.salts.GenerateEncryptionSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.Registration{}, fmt.Errorf("registration failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Registration{}, fmt.Errorf("registration failed: %w", err)
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   passwordHash,
		EncryptionSalt: salt,
		CreatedAt:      a.now(),
	}

	var key models.SecondFactorKey
	if req.EnableTwoFactor || a.enrollTwoFactor {
		key, err = a.otp.Generate(req.Username)
		if err != nil {
			log.Err(err).Msg("second factor provisioning failed")
			return models.Registration{}, fmt.Errorf("registration failed: %w", err)
		}
		user.TOTPSecret = key.Secret
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.Registration{}, ErrDuplicateUser
		}
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.Registration{}, storageError(err)
	}

	token, err := a.sessions.IssueToken(ctx, registeredUser)
	if err != nil {
		return models.Registration{}, err
	}

	log.Info().Int64("user_id", registeredUser.UserID).Bool("two_factor", registeredUser.HasSecondFactor()).Msg("user registered")

	return models.Registration{
		Token:          token.String(),
		EncryptionSalt: registeredUser.EncryptionSalt,
		TwoFASecret:    key.Secret,
		TwoFAURI:       key.URI,
	}, nil
}

// Login verifies username and password.
//
// Users without a second factor get a session token right away. Users with
// an enrolled TOTP secret get TwoFARequired and a pending token in
// TempUserID instead.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.compareDummy(req.Password)
			return models.LoginResult{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by username failed")
		return models.LoginResult{}, storageError(err)
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, req.Password); err != nil {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	if foundUser.HasSecondFactor() {
		pending, err := a.sessions.IssuePendingToken(ctx, foundUser)
		if err != nil {
			return models.LoginResult{}, err
		}

		return models.LoginResult{
			EncryptionSalt: foundUser.EncryptionSalt,
			TwoFARequired:  true,
			TempUserID:     pending.String(),
		}, nil
	}

	return a.signIn(ctx, foundUser)
}

// VerifySecondFactor completes a login that returned TwoFARequired.
//
// A code is accepted at most once: the matching time step must be newer than
// the last accepted one, which the repository enforces atomically.
func (a *authService) VerifySecondFactor(ctx context.Context, req models.SecondFactorRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if req.TempUserID == "" || req.Code == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	userID, err := a.sessions.ResolvePending(ctx, req.TempUserID)
	if err != nil {
		return models.LoginResult{}, err
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.LoginResult{}, ErrInvalidSecondFactor
		}
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.LoginResult{}, storageError(err)
	}

	if !foundUser.HasSecondFactor() {
		return models.LoginResult{}, ErrInvalidSecondFactor
	}

	step, ok := a.otp.Validate(foundUser.TOTPSecret, strings.TrimSpace(req.Code), a.now())
	if !ok {
		log.Debug().Int64("user_id", userID).Msg("second factor code rejected")
		return models.LoginResult{}, ErrInvalidSecondFactor
	}

	if err = a.userRepository.AdvanceTOTPStep(ctx, userID, step); err != nil {
		if errors.Is(err, store.ErrTOTPStepNotAdvanced) {
			log.Warn().Int64("user_id", userID).Int64("step", step).Msg("second factor code replayed")
			return models.LoginResult{}, ErrInvalidSecondFactor
		}
		log.Err(err).Int64("user_id", userID).Msg("recording totp step failed")
		return models.LoginResult{}, storageError(err)
	}

	return a.signIn(ctx, foundUser)
}

func (a *authService) signIn(ctx context.Context, user models.User) (models.LoginResult, error) {
	token, err := a.sessions.IssueToken(ctx, user)
	if err != nil {
		return models.LoginResult{}, err
	}

	return models.LoginResult{
		Token:          token.String(),
		EncryptionSalt: user.EncryptionSalt,
		TwoFARequired:  false,
	}, nil
}

func (a *authService) compareDummy(password string) {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, _ = a.hasher.Hash(dummyPassword)
	})
	_ = a.hasher.Compare(a.dummyHash, password)
}

func validateRegisterRequest(req models.RegisterRequest) error {
	switch {
	case strings.TrimSpace(req.Username) == "":
		return fmt.Errorf("%w: username is required", ErrInvalidDataProvided)
	case strings.TrimSpace(req.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidDataProvided)
	case req.Password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidDataProvided)
	case len(req.Password) > crypto.MaxPasswordLength:
		return fmt.Errorf("%w: password is longer than %d bytes", ErrInvalidDataProvided, crypto.MaxPasswordLength)
	}

	return nil
}
