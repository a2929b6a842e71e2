// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

// Authenticator verifies a handle/secret pair against the credential store.
// On failure the returned error wraps [ErrInvalidCredential] together with
// one of [ErrUnknownHandle], [ErrWrongPassword] or [ErrInactiveUser], or is
// an unexpected store error.
type Authenticator interface {
	Verify(ctx context.Context, handle, secret string) (models.User, error)
}

// TokenIssuer mints and validates session tokens.
type TokenIssuer interface {
	Issue(user models.User) (models.Token, error)
	Parse(tokenString string) (models.Token, error)
}

type AuthService interface {
	// Authenticate returns the canonical user and true when handle and
	// rawSecret identify an active account. Every failure yields false.
	Authenticate(ctx context.Context, handle, rawSecret string) (models.User, bool)

	// IssueSessionToken mints a token for the user behind handle. It does
	// not re-verify credentials.
	IssueSessionToken(ctx context.Context, handle string) (models.Token, error)

	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AccountService interface {
	ListAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByHandle(ctx context.Context, handle string) (models.User, error)

	Create(ctx context.Context, data models.UserCreateUpdate) (models.User, error)
	Update(ctx context.Context, id string, data models.UserCreateUpdate) (models.User, error)
	Delete(ctx context.Context, id string) error

	// ChangePassword re-verifies currentSecret before storing newSecret on
	// the account with id callerID, which must come from a validated token.
	ChangePassword(ctx context.Context, callerID, currentSecret, newSecret string) error

	// UpdateOwnProfile changes username and email of the caller identified
	// by callerID, which must come from a validated token.
	UpdateOwnProfile(ctx context.Context, callerID string, data models.ProfileUpdate) (models.User, error)

	// EnsureAdmin creates the bootstrap administrator unless its username or
	// email is taken. It reports whether an account was created.
	EnsureAdmin(ctx context.Context, data models.UserCreateUpdate) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}
