// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityAlreadyExists is returned when an insert or update collides
	// with the unique username or email of another stored user.
	ErrIdentityAlreadyExists = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set, or an update/delete affects no rows.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvalidUserData is returned when the database rejects a row because
	// it violates a CHECK or NOT NULL constraint (e.g. an unknown role).
	ErrInvalidUserData = errors.New("user data violates table constraints")

	// ErrUnsupportedDSN is returned by [NewConnect] when the DSN names a
	// scheme no backend can open.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan user rows")
)
