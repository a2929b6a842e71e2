// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns raw secrets into one-way digests and checks secrets
// against previously produced digests.
//
// Digests embed a random salt, so hashing the same secret twice yields two
// different strings that both verify.
type PasswordHasher interface {
	// Hash returns the digest of secret.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches digest. A malformed or empty
	// digest never matches.
	Verify(secret, digest string) bool
}
