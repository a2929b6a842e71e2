// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic body for acknowledgments and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login. User never carries the
// password digest because [User.PasswordHash] is excluded from JSON.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}
