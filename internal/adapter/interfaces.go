// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-user-keeper HTTP API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx responses are
// mapped to the sentinel errors in errors.go so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

// ServerAdapter defines the client side of the go-user-keeper API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Login posts the credentials to POST /api/auth/login. On success the
	// returned token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ChangePassword changes the password of the authenticated user.
	ChangePassword(ctx context.Context, req models.PasswordChangeRequest) error

	// ListUsers returns every account. Requires a token.
	ListUsers(ctx context.Context) ([]models.User, error)

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}
