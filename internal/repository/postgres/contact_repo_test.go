package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movers-service/internal/domain/contact"
	xerrors "movers-service/internal/pkg/errors"
	"movers-service/internal/pkg/reference"
)

func testMessage() *contact.Message {
	return &contact.Message{
		Reference: reference.New(reference.ContactPrefix),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "7135550123",
		Subject:   "Storage question",
		Message:   "Do you offer month-to-month storage?",
	}
}

func TestContactRepositorySaveAndFind(t *testing.T) {
	requireDB(t)
	truncate(t, "contact_messages")
	repo := NewContactRepository(testPool)
	ctx := context.Background()

	m := testMessage()
	require.NoError(t, repo.Save(ctx, m))
	assert.NotZero(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())

	found, err := repo.FindByReference(ctx, m.Reference)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", found.Name)
	assert.Equal(t, "Storage question", found.Subject)
}

func TestContactRepositoryFindMissingReference(t *testing.T) {
	requireDB(t)
	repo := NewContactRepository(testPool)

	_, err := repo.FindByReference(context.Background(), "CT-0-missing000")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestContactRepositoryList(t *testing.T) {
	requireDB(t)
	truncate(t, "contact_messages")
	repo := NewContactRepository(testPool)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testMessage()))
	require.NoError(t, repo.Save(ctx, testMessage()))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}
