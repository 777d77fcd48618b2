package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/examhub/examhub-api/internal/database"
	"github.com/examhub/examhub-api/internal/database/models"
	"github.com/examhub/examhub-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email string) *models.User {
	return &models.User{
		Name:         "Store Test",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		Role:         "user",
	}
}

func TestUserStore_CreateAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	store := database.NewUserStore(db)
	ctx := context.Background()

	user := newUser("s1@x.com")
	require.NoError(t, store.Create(ctx, user))
	assert.NotZero(t, user.ID)

	t.Run("by email", func(t *testing.T) {
		found, err := store.FindByEmail(ctx, "s1@x.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("by name", func(t *testing.T) {
		found, err := store.FindByName(ctx, "Store Test")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("by id", func(t *testing.T) {
		found, err := store.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "s1@x.com", found.Email)
	})

	t.Run("missing rows map to ErrNotFound", func(t *testing.T) {
		_, err := store.FindByEmail(ctx, "nope@x.com")
		assert.ErrorIs(t, err, database.ErrNotFound)

		_, err = store.FindByName(ctx, "Nobody")
		assert.ErrorIs(t, err, database.ErrNotFound)

		_, err = store.FindByID(ctx, 99999)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	store := database.NewUserStore(db)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newUser("dup@x.com")))

	err := store.Create(ctx, newUser("dup@x.com"))
	assert.ErrorIs(t, err, database.ErrDuplicate)
}

func TestUserStore_Save(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	store := database.NewUserStore(db)
	ctx := context.Background()

	user := newUser("save@x.com")
	require.NoError(t, store.Create(ctx, user))

	user.SetChallenge("1234", time.Now().Add(time.Hour))
	require.NoError(t, store.Save(ctx, user))

	stored, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.VerificationCode)
	assert.Equal(t, "1234", *stored.VerificationCode)

	t.Run("clearing the challenge nulls both columns", func(t *testing.T) {
		stored.ClearChallenge()
		require.NoError(t, store.Save(ctx, stored))

		reloaded, err := store.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.VerificationCode)
		assert.Nil(t, reloaded.CodeExpiresAt)
	})
}

func TestUserStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	store := database.NewUserStore(db)
	ctx := context.Background()

	user := newUser("del@x.com")
	require.NoError(t, store.Create(ctx, user))

	require.NoError(t, store.Delete(ctx, user))

	_, err := store.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	t.Run("deleting again reports not found", func(t *testing.T) {
		err := store.Delete(ctx, user)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}
