// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/envelope"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It verifies admin and scanner credentials against bcrypt hashes and
// manages the JWT token lifecycle.
type authService struct {
	adminRepository   store.AdminRepository
	scannerRepository store.ScannerRepository

	// codec opens the sealed scanner username and password columns.
	codec *envelope.Codec
	ids   IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// passwordCost is the bcrypt cost used when seeding the admin account.
	passwordCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(adminRepository store.AdminRepository, scannerRepository store.ScannerRepository,
	codec *envelope.Codec, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminRepository:   adminRepository,
		scannerRepository: scannerRepository,
		codec:             codec,
		ids:               ids,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		passwordCost:      bcrypt.DefaultCost,
		logger:            logger,
	}
}

// AdminLogin authenticates a dashboard operator.
//
// Returns ErrInvalidDataProvided for empty credentials and
// ErrWrongCredentials when the username is unknown or the password does not
// match.
func (a *authService) AdminLogin(ctx context.Context, credentials models.Credentials) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		return models.Admin{}, ErrInvalidDataProvided
	}

	admin, err := a.adminRepository.FindByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn().Str("username", credentials.Username).Msg("admin login with unknown username")
		return models.Admin{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("admin search by username failed")
		return models.Admin{}, fmt.Errorf("admin search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Warn().Str("id", admin.ID).Msg("wrong admin password")
		return models.Admin{}, ErrWrongCredentials
	}

	return admin, nil
}

// ScannerLogin authenticates a field worker of the mobile app.
//
// The stored password is a sealed bcrypt hash. A password envelope that
// fails validation never matches.
func (a *authService) ScannerLogin(ctx context.Context, credentials models.Credentials) (models.Scanner, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		return models.Scanner{}, ErrInvalidDataProvided
	}

	record, err := a.findScanner(ctx, credentials.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn().Msg("scanner login with unknown username")
		return models.Scanner{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Msg("scanner search by username failed")
		return models.Scanner{}, fmt.Errorf("scanner search by username failed: %w", err)
	}

	hash, err := a.codec.Open(record.Password)
	if err != nil {
		log.Warn().Err(err).Str("id", record.ID).Msg("scanner password envelope failed validation")
		return models.Scanner{}, ErrWrongCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(credentials.Password)); err != nil {
		log.Warn().Str("id", record.ID).Msg("wrong scanner password")
		return models.Scanner{}, ErrWrongCredentials
	}

	return decodeScanner(a.codec, record), nil
}

// findScanner looks a scanner up by plaintext username. With fixed markers
// the sealed value is matched by the database; otherwise every stored
// username has to be opened.
func (a *authService) findScanner(ctx context.Context, username string) (models.ScannerRecord, error) {
	if a.codec.Deterministic() {
		return a.scannerRepository.FindByUsername(ctx, a.codec.Seal(username))
	}

	records, err := a.scannerRepository.List(ctx)
	if err != nil {
		return models.ScannerRecord{}, err
	}
	for _, record := range records {
		if plaintext, openErr := a.codec.Open(record.Username); openErr == nil && plaintext == username {
			return record, nil
		}
	}

	return models.ScannerRecord{}, store.ErrNotFound
}

// EnsureAdmin creates the admin account unless one with the same username
// already exists. Empty credentials are a no-op.
func (a *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Debug().Msg("admin seeding skipped: no credentials configured")
		return nil
	}

	_, err := a.adminRepository.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("admin search by username failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.passwordCost)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := models.Admin{
		ID:           a.ids.Generate(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         username,
	}
	if err = a.adminRepository.Create(ctx, admin); err != nil {
		return fmt.Errorf("admin creation ended with error: %w", err)
	}

	log.Info().Str("username", username).Msg("admin account created")
	return nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, subjectID string, role models.Role) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subjectID, role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, unknown role) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
