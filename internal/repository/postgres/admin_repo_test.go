package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movers-service/internal/domain/admin"
	xerrors "movers-service/internal/pkg/errors"
)

func TestAdminRepositoryCreateAndFind(t *testing.T) {
	requireDB(t)
	truncate(t, "admins")
	repo := NewAdminRepository(testPool)
	ctx := context.Background()

	a := &admin.Admin{
		Email:        "admin@example.com",
		FullName:     "Site Admin",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, repo.Create(ctx, a))
	assert.NotZero(t, a.ID)

	found, err := repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)
	assert.Equal(t, "Site Admin", found.FullName)
	assert.Equal(t, a.PasswordHash, found.PasswordHash)
}

func TestAdminRepositoryFindMissingEmail(t *testing.T) {
	requireDB(t)
	truncate(t, "admins")
	repo := NewAdminRepository(testPool)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestAdminRepositoryRejectsDuplicateEmail(t *testing.T) {
	requireDB(t)
	truncate(t, "admins")
	repo := NewAdminRepository(testPool)
	ctx := context.Background()

	first := &admin.Admin{Email: "admin@example.com", FullName: "Site Admin", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, first))

	dup := &admin.Admin{Email: "admin@example.com", FullName: "Other Admin", PasswordHash: "hash"}
	assert.Error(t, repo.Create(ctx, dup))
}
