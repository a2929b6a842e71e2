// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// The same code serves PostgreSQL and SQLite; dialect differences live in
// [userQueries] and the [ErrorClassificator] of the [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db      *DB
	queries userQueries
	ids     *utils.UUIDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:      db,
		queries: newUserQueries(db.dialect),
		ids:     utils.NewUUIDGenerator(),
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger:  logger,
	}
}

func (r *userRepository) FindByHandle(ctx context.Context, handle string) (models.User, error) {
	query, args, err := r.queries.findByHandle(handle)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "userRepository.FindByHandle", query, args)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	query, args, err := r.queries.findByID(id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "userRepository.FindByID", query, args)
}

func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	query, args, err := r.queries.findByUsernameOrEmail(username, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findMany(ctx, "userRepository.FindByUsernameOrEmail", query, args)
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query, args, err := r.queries.findAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findMany(ctx, "userRepository.FindAll", query, args)
}

// Save inserts a new user when user.ID is empty, assigning a UUIDv7 and both
// timestamps. Otherwise it updates the row with that ID, refreshing UpdatedAt
// and keeping CreatedAt.
//
// Error handling:
//   - unique constraint violation → [ErrIdentityAlreadyExists];
//   - CHECK / NOT NULL violation → [ErrInvalidUserData];
//   - update that matched no row → [ErrNoUserWasFound].
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		return r.insert(ctx, user)
	}

	return r.update(ctx, user)
}

func (r *userRepository) insert(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	user.ID = r.ids.Generate()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := r.queries.insert(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.User{}, r.statementError(log, "userRepository.insert", err)
	}

	return user, nil
}

func (r *userRepository) update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = r.now()

	query, args, err := r.queries.update(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.User{}, r.statementError(log, "userRepository.update", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Warn().Str("func", "userRepository.update").Str("user_id", user.ID).Msg("no user was updated")
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.countByID(id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "userRepository.ExistsByID").Str("user_id", id).Msg("failed to count users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.deleteByID(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.statementError(log, "userRepository.DeleteByID", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to fetch user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) findMany(ctx context.Context, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// statementError maps a failed INSERT/UPDATE/DELETE to a store error.
func (r *userRepository) statementError(log *logger.Logger, funcName string, err error) error {
	class := r.db.errorClassificator.Classify(err)
	log.Err(err).Str("func", funcName).Stringer("classification", class).Msg("statement failed")

	switch class {
	case UniqueViolation:
		return ErrIdentityAlreadyExists
	case ConstraintViolation:
		return fmt.Errorf("%w: %w", ErrInvalidUserData, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	return user, err
}
