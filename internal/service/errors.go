// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Errors returned to the boundary layer. Each maps to one response class.
var (
	ErrInvalidCredential = errors.New("current password is incorrect")
	ErrDuplicateIdentity = errors.New("email or username already exists")
	ErrNotFound          = errors.New("user not found")
	ErrValidation        = errors.New("validation failed")
)

// Authentication failure reasons. They wrap [ErrInvalidCredential] and are
// only ever logged and counted; callers of [AuthService.Authenticate] see a
// single opaque outcome.
var (
	ErrUnknownHandle = errors.New("unknown handle")
	ErrWrongPassword = errors.New("wrong password")
	ErrInactiveUser  = errors.New("user is inactive")
)

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
