// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-user-keeper/models"
)

// Field names accepted by [UserValidator.Validate]. They match the JSON
// names of the request payloads.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldRole            = "role"
	FieldIsActive        = "isActive"
	FieldHandle          = "handle"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"

	// FieldPasswordRequired makes the otherwise optional password mandatory,
	// as on account creation.
	FieldPasswordRequired = "password required"
)

// structFields maps request field names to Go struct field names for
// [validator.Validate.StructPartialCtx].
var structFields = map[string]string{
	FieldUsername:        "Username",
	FieldEmail:           "Email",
	FieldPassword:        "Password",
	FieldRole:            "Role",
	FieldIsActive:        "IsActive",
	FieldCurrentPassword: "CurrentPassword",
	FieldNewPassword:     "NewPassword",
}

// UserValidator checks account payloads against the `validate` struct tags
// declared on the models, plus the custom "role" rule.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).IsValid()
	})

	return &UserValidator{validate: v}
}

// Validate implements [Validator]. When fields is empty every rule of the
// payload type is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCreateUpdate:
		return v.validateUserCreateUpdate(ctx, value, fields...)
	case *models.UserCreateUpdate:
		return v.validateUserCreateUpdate(ctx, *value, fields...)

	case models.ProfileUpdate:
		return v.validateStruct(ctx, value, fields, FieldUsername, FieldEmail)
	case *models.ProfileUpdate:
		return v.validateStruct(ctx, *value, fields, FieldUsername, FieldEmail)

	case models.PasswordChangeRequest:
		return v.validateStruct(ctx, value, fields, FieldCurrentPassword, FieldNewPassword)
	case *models.PasswordChangeRequest:
		return v.validateStruct(ctx, *value, fields, FieldCurrentPassword, FieldNewPassword)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserCreateUpdate(ctx context.Context, data models.UserCreateUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldRole, FieldIsActive}
	}

	structOnly := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldPasswordRequired {
			if data.Password == "" {
				return fmt.Errorf("%w: password: required", ErrInvalidInput)
			}
			structOnly = append(structOnly, FieldPassword)
			continue
		}
		structOnly = append(structOnly, f)
	}

	return v.validateStruct(ctx, data, structOnly)
}

func (v *UserValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHandle, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldHandle:
			if strings.TrimSpace(request.LoginHandle()) == "" {
				return fmt.Errorf("%w: handle: required", ErrInvalidInput)
			}
		case FieldPassword:
			if err := v.validateStruct(ctx, request, []string{FieldPassword}); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStruct runs the tag rules of the named fields of obj, falling back
// to defaults when fields is empty.
func (v *UserValidator) validateStruct(ctx context.Context, obj any, fields []string, defaults ...string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		name, ok := structFields[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		names = append(names, name)
	}

	return toInputError(v.validate.StructPartialCtx(ctx, obj, names...))
}

func toInputError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	violations := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		violations = append(violations, fe.Field()+": "+rule)
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(violations, "; "))
}
