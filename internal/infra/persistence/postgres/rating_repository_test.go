package postgres_test

import (
	"context"
	"testing"

	"mealmarket/internal/domain/entity"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/infra/persistence/postgres"
	"mealmarket/internal/infra/persistence/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingRepository_CreateRating_Duplicate(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	repo := postgres.NewRatingRepository(db)
	sellerID := uuid.New()

	rating := &entity.Rating{SellerID: sellerID, OfferKey: "offer_1", BuyerID: "buyer_1", Score: 5}
	require.NoError(t, repo.CreateRating(ctx, rating))
	assert.NotEqual(t, uuid.Nil, rating.ID)

	exists, err := repo.ExistsForOfferAndBuyer(ctx, "offer_1", "buyer_1")
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.CreateRating(ctx, &entity.Rating{SellerID: sellerID, OfferKey: "offer_1", BuyerID: "buyer_1", Score: 1})
	assert.ErrorIs(t, err, repository.ErrDuplicateRating)

	exists, err = repo.ExistsForOfferAndBuyer(ctx, "offer_1", "buyer_2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRatingRepository_SummarizeSeller(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	repo := postgres.NewRatingRepository(db)
	sellerID := uuid.New()

	for i, score := range []int{5, 5, 3, 4} {
		require.NoError(t, repo.CreateRating(ctx, &entity.Rating{
			SellerID: sellerID,
			OfferKey: "offer_" + string(rune('a'+i)),
			BuyerID:  "buyer_1",
			Score:    score,
		}))
	}
	require.NoError(t, repo.CreateRating(ctx, &entity.Rating{SellerID: uuid.New(), OfferKey: "offer_z", BuyerID: "buyer_9", Score: 1}))

	summary, err := repo.SummarizeSeller(ctx, sellerID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, summary.Total)
	assert.InDelta(t, 4.25, summary.Average, 0.001)
	assert.Equal(t, map[int]int64{1: 0, 2: 0, 3: 1, 4: 1, 5: 2}, summary.Distribution)

	empty, err := repo.SummarizeSeller(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.Average)
}
