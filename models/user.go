// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization level of a user account.
// It is persisted as its string value.
type Role string

const (
	// RoleAdmin may manage every account through the user CRUD endpoints.
	RoleAdmin Role = "admin"

	// RoleEditor is a dashboard role carried over from the frontend.
	RoleEditor Role = "editor"

	// RoleViewer is a read-only dashboard role.
	RoleViewer Role = "viewer"

	// RoleStandard is the default non-privileged role.
	RoleStandard Role = "standard"
)

// Roles is the closed set of roles accepted by the system.
var Roles = []Role{RoleAdmin, RoleEditor, RoleViewer, RoleStandard}

// IsValid reports whether r belongs to [Roles].
func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication and authorization.
// Both Username and Email are unique and can be used as a login handle.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user.
	// Assigned by the store on first save and immutable afterwards.
	ID string `json:"id"`

	// Username is the unique user login name.
	Username string `json:"username"`

	// Email is the unique e-mail address of the user.
	// It is used as the token subject.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the current password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role determines what the user is authorized to do.
	Role Role `json:"role"`

	// IsActive is false for disabled accounts. Inactive users fail authentication.
	IsActive bool `json:"isActive"`

	// CreatedAt is set once when the account is first persisted.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every save.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Handle returns the login handle embedded into issued tokens.
func (u User) Handle() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}
