// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-keeper/migrations"
	"github.com/MKhiriev/go-user-keeper/models"
)

const usersTable = "users"

// userColumns is the column order used by every SELECT and INSERT and
// expected by scanUser.
var userColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"role",
	"is_active",
	"created_at",
	"updated_at",
}

// userQueries builds the SQL for the users table in the placeholder style of
// one dialect: $n for PostgreSQL, ? for SQLite.
type userQueries struct {
	builder sq.StatementBuilderType
}

func newUserQueries(dialect string) userQueries {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return userQueries{builder: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func (q userQueries) selectUsers() sq.SelectBuilder {
	return q.builder.Select(userColumns...).From(usersTable)
}

func (q userQueries) findAll() (string, []any, error) {
	return q.selectUsers().OrderBy("created_at ASC", "username ASC").ToSql()
}

func (q userQueries) findByID(id string) (string, []any, error) {
	return q.selectUsers().Where(sq.Eq{"id": id}).ToSql()
}

// findByHandle prefers an email match over a username match.
func (q userQueries) findByHandle(handle string) (string, []any, error) {
	return q.selectUsers().
		Where(sq.Or{sq.Eq{"username": handle}, sq.Eq{"email": handle}}).
		OrderByClause("CASE WHEN email = ? THEN 0 ELSE 1 END", handle).
		Limit(1).
		ToSql()
}

func (q userQueries) findByUsernameOrEmail(username, email string) (string, []any, error) {
	return q.selectUsers().
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		ToSql()
}

func (q userQueries) insert(user models.User) (string, []any, error) {
	return q.builder.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Username,
			user.Email,
			user.PasswordHash,
			user.Role.String(),
			user.IsActive,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
}

// update overwrites every mutable column; created_at is never touched.
func (q userQueries) update(user models.User) (string, []any, error) {
	return q.builder.Update(usersTable).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("role", user.Role.String()).
		Set("is_active", user.IsActive).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func (q userQueries) countByID(id string) (string, []any, error) {
	return q.builder.Select("COUNT(*)").From(usersTable).Where(sq.Eq{"id": id}).ToSql()
}

func (q userQueries) deleteByID(id string) (string, []any, error) {
	return q.builder.Delete(usersTable).Where(sq.Eq{"id": id}).ToSql()
}
