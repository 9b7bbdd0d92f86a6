package postgres_test

import (
	"context"
	"testing"

	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/infra/persistence/postgres"
	"mealmarket/internal/infra/persistence/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute_RollsBackOnError(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	seller := testutil.MustCreateSeller(t, db, "alice", true)
	offer := testutil.MustCreateOffer(t, db, seller.ID, entity.MealTypeLunch, 10)
	tm := postgres.NewTransactionManager(db)

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		rows, err := factory.NewOfferRepository().DeleteAvailableOffer(context.Background(), offer.Key, seller.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), rows)

		return domainerrors.ErrRatingNotAllowed
	})
	assert.ErrorIs(t, err, domainerrors.ErrRatingNotAllowed)

	_, err = postgres.NewOfferRepository(db).FindOfferByKey(context.Background(), offer.Key)
	assert.NoError(t, err)
}

func TestTransactionManager_Execute_BeginFailure(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	tm := postgres.NewTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.False(t, called)
}
