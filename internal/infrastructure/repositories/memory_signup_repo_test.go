package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bootcamp-signup.backend/internal/domain/entities"
	domainerrors "bootcamp-signup.backend/internal/domain/errors"
)

func TestMemorySignupRepository_Lifecycle(t *testing.T) {
	repo := NewMemorySignupRepository()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "jane@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	s := &entities.Signup{FullName: "Jane Doe", Email: "jane@example.com", Phone: "+15550001111"}
	require.NoError(t, repo.Create(ctx, s))
	require.NotEqual(t, uuid.Nil, s.ID)
	require.True(t, s.CreatedAt.Valid)
	require.Equal(t, entities.ExperienceBeginner, s.ExperienceLevel)

	found, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, *s, *found)

	// returned record is a copy
	found.FullName = "changed"
	again, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", again.FullName)

	err = repo.Create(ctx, &entities.Signup{FullName: "Other", Email: "jane@example.com", Phone: "1"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	require.NoError(t, repo.Create(ctx, &entities.Signup{FullName: "Sam", Email: "sam@example.com", Phone: "2"}))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	list := repo.List()
	require.Len(t, list, 2)
	require.Equal(t, "jane@example.com", list[0].Email)
	require.Equal(t, "sam@example.com", list[1].Email)
	require.NoError(t, repo.Ping(ctx))
}
