// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the bcrypt work factor used for new digests. Existing digests
	// carry their own cost and verify regardless of this value.
	cost int
}

// NewPasswordHasher constructs a bcrypt-backed [PasswordHasher].
//
// A zero cost selects bcrypt.DefaultCost; any other value is clamped to
// [bcrypt.MinCost, bcrypt.MaxCost].
func NewPasswordHasher(cost int) PasswordHasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. Secrets longer than [MaxSecretBytes]
// are rejected with [ErrSecretTooLong] instead of being truncated.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	if len(secret) > MaxSecretBytes {
		return "", ErrSecretTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashFailed, err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher].
func (h *bcryptHasher) Verify(secret, digest string) bool {
	if digest == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
