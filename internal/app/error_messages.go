// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. The dashboard
// frontend displays some of them verbatim.
package app

const (
	// MsgLoginSuccessful accompanies the token of a successful login.
	MsgLoginSuccessful = "Login successful"

	// MsgInvalidCredentials is the only body a failed login ever gets,
	// whatever the actual reason was.
	MsgInvalidCredentials = "Invalid credentials"

	MsgPasswordUpdated = "Password updated successfully!"

	// MsgCurrentPasswordIncorrect is returned by the change-password endpoint
	// when the current secret does not verify.
	MsgCurrentPasswordIncorrect = "Current password is incorrect."

	MsgUserNotFound = "User not found."

	MsgUserDeleted = "User deleted."

	// MsgIdentityAlreadyExists is returned when username or email is taken.
	MsgIdentityAlreadyExists = "Email or username already exists."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "Invalid data provided."

	// MsgInternalServerError is returned for every unexpected failure. The
	// detail is logged, never sent.
	MsgInternalServerError = "An unexpected error occurred."

	// MsgNotAuthenticated is returned when the caller identity is missing
	// from the request context.
	MsgNotAuthenticated = "User not authenticated."

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid."

	// MsgForbidden is returned when the caller's role does not allow the
	// operation.
	MsgForbidden = "Insufficient permissions."
)
