// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// MaxSecretBytes is the longest secret bcrypt accepts.
const MaxSecretBytes = 72

var (
	// ErrHashFailed is returned when a digest cannot be produced.
	ErrHashFailed = errors.New("password hashing failed")

	// ErrSecretTooLong is returned by Hash for secrets over MaxSecretBytes.
	ErrSecretTooLong = errors.New("password exceeds 72 bytes")
)
