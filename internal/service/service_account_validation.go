// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// createFields are checked on account creation, where a password is mandatory.
var createFields = []string{
	validators.FieldUsername,
	validators.FieldEmail,
	validators.FieldPasswordRequired,
	validators.FieldRole,
	validators.FieldIsActive,
}

// AccountValidationService rejects malformed payloads with ErrValidation
// before they reach the wrapped AccountService.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AccountValidationService) ListAll(ctx context.Context) ([]models.User, error) {
	return v.inner.ListAll(ctx)
}

func (v *AccountValidationService) GetByID(ctx context.Context, id string) (models.User, error) {
	return v.inner.GetByID(ctx, id)
}

func (v *AccountValidationService) GetByHandle(ctx context.Context, handle string) (models.User, error) {
	return v.inner.GetByHandle(ctx, handle)
}

func (v *AccountValidationService) Create(ctx context.Context, data models.UserCreateUpdate) (models.User, error) {
	if err := v.validate(ctx, data, createFields...); err != nil {
		return models.User{}, err
	}

	return v.inner.Create(ctx, data)
}

func (v *AccountValidationService) Update(ctx context.Context, id string, data models.UserCreateUpdate) (models.User, error) {
	if err := v.validate(ctx, data); err != nil {
		return models.User{}, err
	}

	return v.inner.Update(ctx, id, data)
}

func (v *AccountValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *AccountValidationService) ChangePassword(ctx context.Context, callerID, currentSecret, newSecret string) error {
	request := models.PasswordChangeRequest{CurrentPassword: currentSecret, NewPassword: newSecret}
	if err := v.validate(ctx, request); err != nil {
		return err
	}

	return v.inner.ChangePassword(ctx, callerID, currentSecret, newSecret)
}

func (v *AccountValidationService) UpdateOwnProfile(ctx context.Context, callerID string, data models.ProfileUpdate) (models.User, error) {
	if err := v.validate(ctx, data); err != nil {
		return models.User{}, err
	}

	return v.inner.UpdateOwnProfile(ctx, callerID, data)
}

func (v *AccountValidationService) EnsureAdmin(ctx context.Context, data models.UserCreateUpdate) (bool, error) {
	if err := v.validate(ctx, data, createFields...); err != nil {
		return false, err
	}

	return v.inner.EnsureAdmin(ctx, data)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func (v *AccountValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
