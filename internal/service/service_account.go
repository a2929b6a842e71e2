// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-user-keeper/internal/crypto"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

// accountService is the concrete implementation of AccountService.
// Input shape is expected to be checked by a wrapper (see
// AccountValidationService); this type only enforces identity rules.
type accountService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

func NewAccountService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

func (s *accountService) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.findByID(ctx, id)
}

func (s *accountService) GetByHandle(ctx context.Context, handle string) (models.User, error) {
	user, err := s.userRepository.FindByHandle(ctx, handle)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("handle", handle).Msg("user search by handle failed")
		return models.User{}, fmt.Errorf("user search by handle failed: %w", err)
	}

	return user, nil
}

// Create stores a new account. The raw password is hashed and dropped; the
// returned user carries the digest only in the json-ignored field.
func (s *accountService) Create(ctx context.Context, data models.UserCreateUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.checkIdentityIsFree(ctx, "", data.Username, data.Email); err != nil {
		return models.User{}, err
	}

	digest, err := s.hashSecret(ctx, data.Password)
	if err != nil {
		return models.User{}, err
	}

	created, err := s.save(ctx, models.User{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: digest,
		Role:         data.Role,
		IsActive:     data.Active(),
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("user_id", created.ID).Str("role", created.Role.String()).Msg("user created")
	return created, nil
}

// Update overwrites username, email, role and active flag of the account
// with the given id. The digest is only replaced when data carries a password.
func (s *accountService) Update(ctx context.Context, id string, data models.UserCreateUpdate) (models.User, error) {
	user, err := s.findByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if err = s.checkIdentityIsFree(ctx, user.ID, data.Username, data.Email); err != nil {
		return models.User{}, err
	}

	user.Username = data.Username
	user.Email = data.Email
	user.Role = data.Role
	user.IsActive = data.Active()

	if data.Password != "" {
		digest, err := s.hashSecret(ctx, data.Password)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = digest
	}

	return s.save(ctx, user)
}

// ChangePassword resolves the caller by id, so a token issued before an
// email or username change still reaches the same account.
func (s *accountService) ChangePassword(ctx context.Context, callerID, currentSecret, newSecret string) error {
	log := logger.FromContext(ctx)

	if newSecret == "" {
		return fmt.Errorf("%w: newPassword: required", ErrValidation)
	}

	user, err := s.findByID(ctx, callerID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(currentSecret, user.PasswordHash) {
		log.Warn().Str("user_id", user.ID).Msg("password change rejected: current password mismatch")
		return ErrInvalidCredential
	}

	digest, err := s.hashSecret(ctx, newSecret)
	if err != nil {
		return err
	}
	user.PasswordHash = digest

	if _, err = s.save(ctx, user); err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

func (s *accountService) UpdateOwnProfile(ctx context.Context, callerID string, data models.ProfileUpdate) (models.User, error) {
	user, err := s.findByID(ctx, callerID)
	if err != nil {
		return models.User{}, err
	}

	if err = s.checkIdentityIsFree(ctx, user.ID, data.Username, data.Email); err != nil {
		return models.User{}, err
	}

	user.Username = data.Username
	user.Email = data.Email

	return s.save(ctx, user)
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	exists, err := s.userRepository.ExistsByID(ctx, id)
	if err != nil {
		log.Err(err).Str("user_id", id).Msg("user existence check failed")
		return fmt.Errorf("user existence check failed: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	err = s.userRepository.DeleteByID(ctx, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("user_id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *accountService) EnsureAdmin(ctx context.Context, data models.UserCreateUpdate) (bool, error) {
	matches, err := s.userRepository.FindByUsernameOrEmail(ctx, data.Username, data.Email)
	if err != nil {
		return false, fmt.Errorf("admin lookup failed: %w", err)
	}
	if len(matches) > 0 {
		return false, nil
	}

	if _, err = s.Create(ctx, data); err != nil {
		return false, err
	}

	return true, nil
}

func (s *accountService) findByID(ctx context.Context, id string) (models.User, error) {
	// ids are UUIDs; anything else cannot exist and must not reach a uuid column
	if _, err := uuid.Parse(id); err != nil {
		return models.User{}, ErrNotFound
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// hashSecret turns an over-long secret into ErrValidation. The validator
// counts characters, so multi-byte secrets can still reach the byte limit here.
func (s *accountService) hashSecret(ctx context.Context, secret string) (string, error) {
	digest, err := s.hasher.Hash(secret)
	if errors.Is(err, crypto.ErrSecretTooLong) {
		return "", fmt.Errorf("%w: password: max=%d bytes", ErrValidation, crypto.MaxSecretBytes)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("password hashing failed")
		return "", err
	}

	return digest, nil
}

// checkIdentityIsFree fails with ErrDuplicateIdentity when username or email
// belongs to an account other than selfID.
func (s *accountService) checkIdentityIsFree(ctx context.Context, selfID, username, email string) error {
	matches, err := s.userRepository.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("identity lookup failed")
		return fmt.Errorf("identity lookup failed: %w", err)
	}

	for _, match := range matches {
		if match.ID != selfID {
			return ErrDuplicateIdentity
		}
	}

	return nil
}

// save persists user and translates store errors. The unique constraints
// catch collisions that slip past checkIdentityIsFree under concurrency.
func (s *accountService) save(ctx context.Context, user models.User) (models.User, error) {
	saved, err := s.userRepository.Save(ctx, user)
	switch {
	case err == nil:
		return saved, nil
	case errors.Is(err, store.ErrIdentityAlreadyExists):
		return models.User{}, ErrDuplicateIdentity
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrNotFound
	case errors.Is(err, store.ErrInvalidUserData):
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("saving user failed")
		return models.User{}, fmt.Errorf("saving user failed: %w", err)
	}
}
