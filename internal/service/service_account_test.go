// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-keeper/internal/crypto"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

const bobID = "0192f1a4-7c4e-7b1a-9d2e-000000000b0b"

func boolPtr(b bool) *bool { return &b }

type accountFixture struct {
	repo   *mock.MockUserRepository
	hasher *mock.MockPasswordHasher
	svc    AccountService
}

func newAccountFixture(t *testing.T) accountFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return accountFixture{
		repo:   repo,
		hasher: hasher,
		svc:    NewAccountService(repo, hasher, logger.Nop()),
	}
}

func aliceCreate() models.UserCreateUpdate {
	return models.UserCreateUpdate{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
		Role:     models.RoleStandard,
		IsActive: boolPtr(true),
	}
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCreate_HashesPasswordAndPersists(t *testing.T) {
	f := newAccountFixture(t)
	data := aliceCreate()

	f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "alice", "a@x.com").Return([]models.User{}, nil)
	f.hasher.EXPECT().Hash("secret1").Return("digest-of-secret1", nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Empty(t, u.ID)
		assert.Equal(t, "digest-of-secret1", u.PasswordHash)
		assert.Equal(t, models.RoleStandard, u.Role)
		assert.True(t, u.IsActive)
		u.ID = alice.ID
		return u, nil
	})

	created, err := f.svc.Create(context.Background(), data)

	require.NoError(t, err)
	assert.Equal(t, alice.ID, created.ID)
	assert.NotEqual(t, "secret1", created.PasswordHash)
}

func TestCreate_DuplicateIdentity(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
	}{
		{name: "same username", username: "alice", email: "other@x.com"},
		{name: "same email", username: "alicia", email: "a@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)
			data := aliceCreate()
			data.Username, data.Email = tt.username, tt.email

			f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), tt.username, tt.email).Return([]models.User{alice}, nil)
			// no Hash and no Save: a rejected create never writes

			_, err := f.svc.Create(context.Background(), data)
			assert.ErrorIs(t, err, ErrDuplicateIdentity)
		})
	}
}

func TestCreate_UniqueConstraintBackstop(t *testing.T) {
	f := newAccountFixture(t)

	f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "alice", "a@x.com").Return(nil, nil)
	f.hasher.EXPECT().Hash("secret1").Return("digest", nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrIdentityAlreadyExists)

	_, err := f.svc.Create(context.Background(), aliceCreate())
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestCreate_Errors(t *testing.T) {
	hashErr := errors.New("hash failed")

	t.Run("lookup failure", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

		_, err := f.svc.Create(context.Background(), aliceCreate())
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("hash failure", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.hasher.EXPECT().Hash("secret1").Return("", hashErr)

		_, err := f.svc.Create(context.Background(), aliceCreate())
		assert.ErrorIs(t, err, hashErr)
	})

	t.Run("constraint violation", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.hasher.EXPECT().Hash("secret1").Return("digest", nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrInvalidUserData)

		_, err := f.svc.Create(context.Background(), aliceCreate())
		assert.ErrorIs(t, err, ErrValidation)
	})
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestUpdate_WithoutPasswordKeepsDigest(t *testing.T) {
	f := newAccountFixture(t)
	data := aliceCreate()
	data.Password = ""
	data.Role = models.RoleEditor
	data.IsActive = boolPtr(false)

	f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
	f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "alice", "a@x.com").Return([]models.User{alice}, nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		return u, nil
	})

	updated, err := f.svc.Update(context.Background(), alice.ID, data)

	require.NoError(t, err)
	assert.Equal(t, alice.PasswordHash, updated.PasswordHash)
	assert.Equal(t, models.RoleEditor, updated.Role)
	assert.False(t, updated.IsActive)
}

func TestUpdate_WithPasswordRehashes(t *testing.T) {
	f := newAccountFixture(t)
	data := aliceCreate()
	data.Password = "brand-new"

	f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
	f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "alice", "a@x.com").Return([]models.User{alice}, nil)
	f.hasher.EXPECT().Hash("brand-new").Return("digest-of-brand-new", nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		return u, nil
	})

	updated, err := f.svc.Update(context.Background(), alice.ID, data)

	require.NoError(t, err)
	assert.Equal(t, "digest-of-brand-new", updated.PasswordHash)
}

func TestUpdate_CollisionWithAnotherUser(t *testing.T) {
	f := newAccountFixture(t)
	data := aliceCreate()
	data.Email = "b@x.com"

	bob := models.User{ID: bobID, Username: "bob", Email: "b@x.com"}

	f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
	f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "alice", "b@x.com").Return([]models.User{alice, bob}, nil)

	_, err := f.svc.Update(context.Background(), alice.ID, data)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), bobID).Return(models.User{}, store.ErrNoUserWasFound)

		_, err := f.svc.Update(context.Background(), bobID, aliceCreate())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		f := newAccountFixture(t)

		_, err := f.svc.Update(context.Background(), "42", aliceCreate())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// ─────────────────────────────────────────────
// ChangePassword
// ─────────────────────────────────────────────

func TestChangePassword_Success(t *testing.T) {
	f := newAccountFixture(t)

	f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
	f.hasher.EXPECT().Verify("secret1", alice.PasswordHash).Return(true)
	f.hasher.EXPECT().Hash("newpass2").Return("digest-of-newpass2", nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "digest-of-newpass2", u.PasswordHash)
		assert.Equal(t, alice.ID, u.ID)
		return u, nil
	})

	require.NoError(t, f.svc.ChangePassword(context.Background(), alice.ID, "secret1", "newpass2"))
}

func TestChangePassword_WrongCurrentLeavesDigest(t *testing.T) {
	f := newAccountFixture(t)

	f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
	f.hasher.EXPECT().Verify("wrong", alice.PasswordHash).Return(false)
	// no Save expected

	err := f.svc.ChangePassword(context.Background(), alice.ID, "wrong", "newpass2")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestChangePassword_Errors(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), bobID).Return(models.User{}, store.ErrNoUserWasFound)

		err := f.svc.ChangePassword(context.Background(), bobID, "secret1", "newpass2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newAccountFixture(t)

		err := f.svc.ChangePassword(context.Background(), "alice", "secret1", "newpass2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty new password", func(t *testing.T) {
		f := newAccountFixture(t)

		err := f.svc.ChangePassword(context.Background(), alice.ID, "secret1", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("new password too long for the hasher", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
		f.hasher.EXPECT().Verify("secret1", alice.PasswordHash).Return(true)
		f.hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrSecretTooLong)

		err := f.svc.ChangePassword(context.Background(), alice.ID, "secret1", "long-in-bytes")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("hash failure", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
		f.hasher.EXPECT().Verify("secret1", alice.PasswordHash).Return(true)
		f.hasher.EXPECT().Hash("newpass2").Return("", crypto.ErrHashFailed)

		err := f.svc.ChangePassword(context.Background(), alice.ID, "secret1", "newpass2")
		require.ErrorIs(t, err, crypto.ErrHashFailed)
		assert.NotErrorIs(t, err, ErrValidation)
		assert.Equal(t, crypto.ErrHashFailed.Error(), err.Error())
	})

	t.Run("save failure", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
		f.hasher.EXPECT().Verify("secret1", alice.PasswordHash).Return(true)
		f.hasher.EXPECT().Hash("newpass2").Return("digest", nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingStatement)

		err := f.svc.ChangePassword(context.Background(), alice.ID, "secret1", "newpass2")
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
		assert.NotErrorIs(t, err, ErrInvalidCredential)
	})
}

func TestCreate_SecretTooLongIsValidationError(t *testing.T) {
	f := newAccountFixture(t)
	data := aliceCreate()

	f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "alice", "a@x.com").Return(nil, nil)
	f.hasher.EXPECT().Hash("secret1").Return("", crypto.ErrSecretTooLong)

	_, err := f.svc.Create(context.Background(), data)
	assert.ErrorIs(t, err, ErrValidation)
}

// ─────────────────────────────────────────────
// UpdateOwnProfile
// ─────────────────────────────────────────────

func TestUpdateOwnProfile_OnlyTouchesUsernameAndEmail(t *testing.T) {
	f := newAccountFixture(t)

	f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
	f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "alice2", "a2@x.com").Return(nil, nil)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		return u, nil
	})

	updated, err := f.svc.UpdateOwnProfile(context.Background(), alice.ID, models.ProfileUpdate{Username: "alice2", Email: "a2@x.com"})

	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "a2@x.com", updated.Email)
	assert.Equal(t, alice.Role, updated.Role)
	assert.Equal(t, alice.IsActive, updated.IsActive)
	assert.Equal(t, alice.PasswordHash, updated.PasswordHash)
}

func TestUpdateOwnProfile_TakenHandle(t *testing.T) {
	f := newAccountFixture(t)

	f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
	f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "bob", "a@x.com").
		Return([]models.User{alice, {ID: bobID, Username: "bob"}}, nil)

	_, err := f.svc.UpdateOwnProfile(context.Background(), alice.ID, models.ProfileUpdate{Username: "bob", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

// ─────────────────────────────────────────────
// Delete / reads
// ─────────────────────────────────────────────

func TestDelete(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().ExistsByID(gomock.Any(), alice.ID).Return(true, nil)
		f.repo.EXPECT().DeleteByID(gomock.Any(), alice.ID).Return(nil)

		require.NoError(t, f.svc.Delete(context.Background(), alice.ID))
	})

	t.Run("missing", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().ExistsByID(gomock.Any(), bobID).Return(false, nil)

		assert.ErrorIs(t, f.svc.Delete(context.Background(), bobID), ErrNotFound)
	})

	t.Run("removed concurrently", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().ExistsByID(gomock.Any(), bobID).Return(true, nil)
		f.repo.EXPECT().DeleteByID(gomock.Any(), bobID).Return(store.ErrNoUserWasFound)

		assert.ErrorIs(t, f.svc.Delete(context.Background(), bobID), ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newAccountFixture(t)
		assert.ErrorIs(t, f.svc.Delete(context.Background(), "not-a-uuid"), ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().ExistsByID(gomock.Any(), bobID).Return(false, store.ErrScanningRow)

		err := f.svc.Delete(context.Background(), bobID)
		assert.ErrorIs(t, err, store.ErrScanningRow)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestReads(t *testing.T) {
	f := newAccountFixture(t)

	f.repo.EXPECT().FindAll(gomock.Any()).Return([]models.User{alice}, nil)
	f.repo.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
	f.repo.EXPECT().FindByHandle(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	users, err := f.svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{alice}, users)

	user, err := f.svc.GetByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice, user)

	_, err = f.svc.GetByHandle(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ─────────────────────────────────────────────
// EnsureAdmin
// ─────────────────────────────────────────────

func TestEnsureAdmin(t *testing.T) {
	admin := models.UserCreateUpdate{
		Username: "root",
		Email:    "root@x.com",
		Password: "changeme",
		Role:     models.RoleAdmin,
		IsActive: boolPtr(true),
	}

	t.Run("creates when absent", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "root", "root@x.com").Return(nil, nil).Times(2)
		f.hasher.EXPECT().Hash("changeme").Return("digest", nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.RoleAdmin, u.Role)
			return u, nil
		})

		created, err := f.svc.EnsureAdmin(context.Background(), admin)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("noop when present", func(t *testing.T) {
		f := newAccountFixture(t)
		f.repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "root", "root@x.com").
			Return([]models.User{{ID: bobID, Username: "root"}}, nil)

		created, err := f.svc.EnsureAdmin(context.Background(), admin)
		require.NoError(t, err)
		assert.False(t, created)
	})
}
