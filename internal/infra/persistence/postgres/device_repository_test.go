package postgres_test

import (
	"context"
	"testing"
	"time"

	"mealmarket/internal/domain/entity"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/infra/persistence/postgres"
	"mealmarket/internal/infra/persistence/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_Lifecycle(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	repo := postgres.NewDeviceRepository(db)
	sellerID := uuid.New()

	phone := &entity.SellerDevice{SellerID: sellerID, FCMToken: "token-a", DeviceID: "phone", Platform: "ios", IsActive: true}
	tablet := &entity.SellerDevice{SellerID: sellerID, FCMToken: "token-b", DeviceID: "tablet", Platform: "android", IsActive: true}
	require.NoError(t, repo.CreateDevice(ctx, phone))
	require.NoError(t, repo.CreateDevice(ctx, tablet))

	err := repo.CreateDevice(ctx, &entity.SellerDevice{SellerID: uuid.New(), FCMToken: "token-a", DeviceID: "x", Platform: "ios", IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)

	rows, err := repo.DeactivateDevices(ctx, []string{"token-b", "unknown"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	active, err := repo.FindActiveDevicesBySeller(ctx, sellerID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, phone.ID, active[0].ID)

	all, err := repo.FindDevicesBySeller(ctx, sellerID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.UpdateFCMToken(ctx, tablet.ID, "token-c"))
	reactivated, err := repo.FindDeviceByID(ctx, tablet.ID)
	require.NoError(t, err)
	assert.Equal(t, "token-c", reactivated.FCMToken)
	assert.True(t, reactivated.IsActive)

	require.NoError(t, repo.DeleteDevice(ctx, phone.ID))
	_, err = repo.FindDeviceByID(ctx, phone.ID)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.DeleteDevice(ctx, phone.ID), repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.UpdateFCMToken(ctx, uuid.New(), "token-z"), repository.ErrDeviceNotFound)

	purged, err := repo.PurgeInactiveBefore(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged, "only the soft-deleted phone is purged")
}

func TestSellerRepository_Upsert(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	repo := postgres.NewSellerRepository(db)

	seller := testutil.MustCreateSeller(t, db, "alice", false)

	seller.Phone = "+15559999999"
	seller.PhoneVerified = true
	require.NoError(t, repo.UpsertSeller(ctx, seller))

	found, err := repo.FindSellerByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, "+15559999999", found.Phone)
	assert.True(t, found.CanPublishOffers())

	_, err = repo.FindSellerByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSellerNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	tm := postgres.NewTransactionManager(db)
	sellerID := uuid.New()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewRatingRepository().CreateRating(ctx, &entity.Rating{
			SellerID: sellerID, OfferKey: "offer_1", BuyerID: "buyer_1", Score: 4,
		}); err != nil {
			return err
		}

		return repository.ErrDuplicateRating
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateRating)

	summary, err := postgres.NewRatingRepository(db).SummarizeSeller(ctx, sellerID)
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
}
