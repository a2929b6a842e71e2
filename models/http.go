// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /api/auth/login.
//
// Handle may be either a username or an e-mail address. Email is accepted as
// an alias because the dashboard frontend posts the handle under that key.
type LoginRequest struct {
	Handle   string `json:"handle,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password" validate:"required"`
}

// LoginHandle returns Handle, falling back to Email.
func (l LoginRequest) LoginHandle() string {
	if l.Handle != "" {
		return l.Handle
	}
	return l.Email
}

// PasswordChangeRequest is the body of POST /api/auth/change-password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

// UserCreateUpdate carries the account fields accepted by the create and
// update endpoints. Password is optional on update: an empty value keeps the
// current digest.
//
// IsActive is a pointer so that an omitted field can be told apart from false.
type UserCreateUpdate struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Role     Role   `json:"role" validate:"required,role"`
	IsActive *bool  `json:"isActive" validate:"required"`
}

// Active returns the dereferenced IsActive flag (false when nil).
func (u UserCreateUpdate) Active() bool {
	return u.IsActive != nil && *u.IsActive
}

// ProfileUpdate carries the fields a user may change on their own account.
type ProfileUpdate struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
}
