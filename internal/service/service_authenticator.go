// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/crypto"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

// credentialAuthenticator checks a secret against the digest stored for a
// handle and refuses inactive accounts.
type credentialAuthenticator struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
}

func NewCredentialAuthenticator(userRepository store.UserRepository, hasher crypto.PasswordHasher) Authenticator {
	return &credentialAuthenticator{
		userRepository: userRepository,
		hasher:         hasher,
	}
}

func (a *credentialAuthenticator) Verify(ctx context.Context, handle, secret string) (models.User, error) {
	user, err := a.userRepository.FindByHandle(ctx, handle)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredential, ErrUnknownHandle)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error looking up user by handle: %w", err)
	}

	if !a.hasher.Verify(secret, user.PasswordHash) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredential, ErrWrongPassword)
	}

	// checked after the secret so that the reason is only known to holders of the password
	if !user.IsActive {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredential, ErrInactiveUser)
	}

	return user, nil
}
