//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlansRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPlansRepository(db)

	t.Run("save plan record", func(t *testing.T) {
		record := &PlanRecord{
			RequestDigest: "digest-a",
			Trailer:       model.Trailer{Length: 200, Width: 150, Height: 150, Unit: "cm"},
			BoxTypes:      2,
			BoxUnits:      8,
			Plan: model.LoadingPlan{
				Fits: true,
				Stats: model.PlanStats{
					TrailerVolume:    4500000,
					UsedVolume:       255000,
					FillRate:         0.0567,
					TotalBoxesPlaced: 8,
					LayersUsed:       1,
				},
			},
			RequestedBy: "test-user",
		}

		saved, err := repo.Save(ctx, record)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.False(t, saved.ID.IsZero())
		assert.False(t, saved.CreatedAt.IsZero())
	})

	t.Run("get plan record by id", func(t *testing.T) {
		record := &PlanRecord{
			RequestDigest: "digest-b",
			Plan:          model.LoadingPlan{Fits: false},
		}
		saved, err := repo.Save(ctx, record)
		require.NoError(t, err)

		fetched, err := repo.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "digest-b", fetched.RequestDigest)
		assert.False(t, fetched.Plan.Fits)
	})

	t.Run("get unknown id returns nil", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		first, err := repo.Save(ctx, &PlanRecord{RequestDigest: "digest-old"})
		require.NoError(t, err)

		// Stored timestamps have millisecond precision
		time.Sleep(5 * time.Millisecond)

		second, err := repo.Save(ctx, &PlanRecord{RequestDigest: "digest-new"})
		require.NoError(t, err)

		records, err := repo.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, second.ID, records[0].ID)
		assert.Equal(t, first.ID, records[1].ID)
	})

	t.Run("list honors limit", func(t *testing.T) {
		records, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("count by fits", func(t *testing.T) {
		fitsCount, err := repo.CountByFits(ctx, true)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, fitsCount, int64(1))

		noFitCount, err := repo.CountByFits(ctx, false)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, noFitCount, int64(1))
	})
}
