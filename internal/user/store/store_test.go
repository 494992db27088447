package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/invoicedash/internal/database/dbtest"
	"github.com/MrJamesThe3rd/invoicedash/internal/user"
	"github.com/MrJamesThe3rd/invoicedash/internal/user/store"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := dbtest.Open(t)
	s := store.New(db)
	ctx := context.Background()

	u := &user.User{Name: "User", Email: "user@nextmail.com", Password: "$2a$10$hash"}
	require.NoError(t, s.Create(ctx, u))
	require.NotEqual(t, uuid.Nil, u.ID)

	byEmail, err := s.GetByEmail(ctx, "user@nextmail.com")
	require.NoError(t, err)
	assert.Equal(t, u, byEmail)

	byID, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, byID)
}

func TestStore_GetByEmail_ExactMatch(t *testing.T) {
	db := dbtest.Open(t)
	s := store.New(db)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &user.User{Name: "User", Email: "user@nextmail.com", Password: "x"}))

	_, err := s.GetByEmail(ctx, "USER@nextmail.com")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = s.GetByEmail(ctx, "nobody@nextmail.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := dbtest.Open(t)
	s := store.New(db)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &user.User{Name: "A", Email: "dup@nextmail.com", Password: "x"}))

	err := s.Create(ctx, &user.User{Name: "B", Email: "dup@nextmail.com", Password: "y"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}
