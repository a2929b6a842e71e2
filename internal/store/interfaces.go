// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store: durable lookup and persistence of
// user identities.
type UserRepository interface {
	// FindByHandle returns the user whose username or email equals handle.
	// An email match wins when handle matches two different users.
	FindByHandle(ctx context.Context, handle string) (models.User, error)

	// FindByUsernameOrEmail returns every user whose username equals username
	// or whose email equals email. An empty slice means no collision.
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error)

	FindByID(ctx context.Context, id string) (models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)

	// Save inserts user when user.ID is empty and updates the stored row
	// otherwise. The persisted record is returned.
	Save(ctx context.Context, user models.User) (models.User, error)

	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}

// ErrorClassificator maps backend-specific driver errors to a portable
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
