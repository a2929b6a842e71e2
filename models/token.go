// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued after a successful login.
//
// The "sub" registered claim carries the login handle of the user; the
// private claims carry the user identifier and role so that downstream
// handlers can authorize requests without reloading the account.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the identifier of the authenticated user.
	UserID string `json:"uid"`

	// Role is the role the user had at issuance time.
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in HTTP headers or response bodies.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Handle returns the login handle stored in the "sub" claim.
func (t Token) Handle() string {
	return t.Claims.Subject
}

// UserID returns the user identifier stored in the token.
func (t Token) UserID() string {
	return t.Claims.UserID
}

// Role returns the role stored in the token.
func (t Token) Role() Role {
	return t.Claims.Role
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
