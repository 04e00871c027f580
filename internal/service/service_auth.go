package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
	"golang.org/x/crypto/bcrypt"
)

// bootstrapAdminUsername is the login of the account seeded on first start.
const bootstrapAdminUsername = "admin"

// authService is the concrete implementation of AuthService.
// It handles account provisioning, credential verification, and the JWT
// token lifecycle, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bootstrapAdminPassword is the plaintext password given to the seeded
	// admin account. A well-known default; see EnsureBootstrapAdmin.
	bootstrapAdminPassword string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         userRepository,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		bootstrapAdminPassword: cfg.BootstrapAdminPassword,
		logger:                 logger,
	}
}

// Login authenticates an existing user.
//
// It validates that both username and password are non-empty, looks the
// account up by username, and compares the supplied plaintext against the
// stored bcrypt hash. bcrypt's comparison is constant-effort with respect to
// the candidate password, so match length does not leak through timing.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the hash comparison fails.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Err(err).
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateUser provisions a new account.
//
// It validates the inputs, hashes the plaintext password with bcrypt (a
// fresh random salt per call, so equal passwords never share a hash), and
// delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidRole if role is neither admin nor employee.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) CreateUser(ctx context.Context, username, password, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if role != models.RoleAdmin && role != models.RoleEmployee {
		log.Error().Str("role", role).Msg("invalid role provided")
		return models.User{}, ErrInvalidRole
	}

	hash, err := hashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// ResetPassword replaces the named account's stored hash with the bcrypt
// hash of newPassword. Any session tokens already issued to the account stay
// valid until expiry; only future logins are affected.
//
// Returns:
//   - ErrInvalidDataProvided if username or newPassword is empty.
//   - A wrapped storage error if the update fails (e.g. unknown user —
//     see store.ErrNoUserWasFound).
func (a *authService) ResetPassword(ctx context.Context, username, newPassword string) error {
	log := logger.FromContext(ctx)

	if username == "" || newPassword == "" {
		log.Error().Str("username", username).Msg("invalid reset data provided")
		return ErrInvalidDataProvided
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePasswordHash(ctx, username, hash); err != nil {
		log.Err(err).Str("username", username).Msg("password hash update failed")
		return fmt.Errorf("password hash update failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the account role as a custom claim, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// EnsureBootstrapAdmin seeds the "admin" account with the configured
// bootstrap password when no such user exists yet. The default password is a
// fixed well-known value, hence the warning on every seed.
func (a *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByUsername(ctx, bootstrapAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("bootstrap admin lookup failed: %w", err)
	}

	if _, err := a.CreateUser(ctx, bootstrapAdminUsername, a.bootstrapAdminPassword, models.RoleAdmin); err != nil {
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	log.Warn().
		Str("username", bootstrapAdminUsername).
		Msg("seeded bootstrap admin account with the configured well-known password; change it")

	return nil
}

// hashPassword returns the bcrypt hash of the given plaintext at the default
// cost. bcrypt salts internally, so two calls on the same input produce
// different hashes.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
