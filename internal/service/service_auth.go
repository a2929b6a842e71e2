// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/crypto"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

// authService is the concrete implementation of AuthService.
// Credential checks are delegated to an Authenticator and token handling
// to a TokenIssuer; the service itself only decides what the caller sees.
type authService struct {
	authenticator Authenticator

	// userRepository is used to reload the canonical user after
	// verification and before token issuance.
	userRepository store.UserRepository

	tokenIssuer TokenIssuer

	logger *logger.Logger
}

// NewAuthService constructs an AuthService that verifies secrets with hasher
// and signs tokens with the parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(
		NewCredentialAuthenticator(userRepository, hasher),
		userRepository,
		NewTokenIssuer(cfg),
		logger,
	)
}

func newAuthService(authenticator Authenticator, userRepository store.UserRepository, tokenIssuer TokenIssuer, logger *logger.Logger) *authService {
	return &authService{
		authenticator:  authenticator,
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

// Authenticate verifies handle and rawSecret.
//
// Unknown handles, wrong secrets, inactive accounts and store failures all
// produce the same (zero, false) result. The actual reason is logged and
// counted but never returned.
func (a *authService) Authenticate(ctx context.Context, handle, rawSecret string) (models.User, bool) {
	log := logger.FromContext(ctx)

	if _, err := a.authenticator.Verify(ctx, handle, rawSecret); err != nil {
		outcome := loginOutcome(err)
		loginAttempts.WithLabelValues(outcome).Inc()

		if errors.Is(err, ErrInvalidCredential) {
			log.Warn().Str("handle", handle).Str("reason", outcome).Msg("authentication failed")
		} else {
			log.Err(err).Str("handle", handle).Msg("authentication ended with error")
		}
		return models.User{}, false
	}

	// handle may have matched either username or email
	user, err := a.userRepository.FindByHandle(ctx, handle)
	if err != nil {
		loginAttempts.WithLabelValues(outcomeError).Inc()
		log.Err(err).Str("handle", handle).Msg("reloading authenticated user failed")
		return models.User{}, false
	}

	loginAttempts.WithLabelValues(outcomeSuccess).Inc()
	return user, true
}

// IssueSessionToken issues a token for the user behind handle.
//
// Returns ErrNotFound when the handle is unknown and ErrTokenCreationFailed
// when signing fails.
func (a *authService) IssueSessionToken(ctx context.Context, handle string) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByHandle(ctx, handle)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Token{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("handle", handle).Msg("user search by handle failed")
		return models.Token{}, fmt.Errorf("user search by handle failed: %w", err)
	}

	token, err := a.tokenIssuer.Issue(user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Every validation failure
// (expired, wrong issuer, bad signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.tokenIssuer.Parse(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
