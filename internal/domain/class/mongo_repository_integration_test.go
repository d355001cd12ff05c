//go:build integration

package class

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnflex/internal/pkg/dbtest"
)

func TestMongoRepository_IncrementAndPage(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoRepository(dbtest.Mongo(t))
	require.NoError(t, repo.EnsureIndexes(ctx))

	for _, n := range []string{"Yoga", "Yoga Flow", "Boxing", "Spin", "Row", "HIIT", "Barre"} {
		require.NoError(t, repo.Create(ctx, &Class{Name: n}))
	}
	assert.ErrorIs(t, repo.Create(ctx, &Class{Name: "Yoga"}), ErrClassExists)
	assert.ErrorIs(t, repo.Create(ctx, &Class{Name: "yOGA"}), ErrClassExists)

	require.NoError(t, repo.IncrementBooking(ctx, "yoga"))
	assert.ErrorIs(t, repo.IncrementBooking(ctx, "yog"), ErrClassNotFound)
	assert.ErrorIs(t, repo.IncrementBooking(ctx, "Yoga.*"), ErrClassNotFound)

	yoga, err := repo.GetByName(ctx, "YOGA")
	require.NoError(t, err)
	assert.Equal(t, 1, yoga.TotalBooking)

	second, err := repo.List(ctx, "", PageSize, PageSize)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Barre", second[0].Name)

	n, err := repo.Count(ctx, "yoga")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	top, err := repo.TopBooked(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Yoga", top[0].Name)
}
