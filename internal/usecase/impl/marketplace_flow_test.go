package impl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/service"
	"mealmarket/internal/infra/persistence/postgres"
	"mealmarket/internal/infra/persistence/testutil"
	"mealmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedEvent struct {
	room    string
	event   string
	payload any
}

// recordingPublisher captures realtime events in memory. An empty room is a broadcast.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, room, event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{room: room, event: event, payload: payload})
}

func (p *recordingPublisher) BroadcastAll(ctx context.Context, event string, payload any) {
	p.Publish(ctx, "", event, payload)
}

func (p *recordingPublisher) inRoom(room string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	var matched []publishedEvent
	for _, e := range p.events {
		if e.room == room {
			matched = append(matched, e)
		}
	}

	return matched
}

type marketplace struct {
	offers        usecase.OfferUsecase
	ratings       usecase.RatingUsecase
	notifications usecase.NotificationUsecase
	realtime      *recordingPublisher
	seller        *entity.Seller
}

func newMarketplace(t *testing.T) *marketplace {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	cfg := &config.Config{}
	logger := discardLogger()
	realtime := &recordingPublisher{}

	notifications := NewNotificationService(NotificationServiceParams{
		NotificationRepo: postgres.NewNotificationRepository(db),
		DeviceRepo:       postgres.NewDeviceRepository(db),
		Config:           cfg,
		Logger:           logger,
	})

	return &marketplace{
		offers: NewOfferService(OfferServiceParams{
			OfferRepo:     postgres.NewOfferRepository(db),
			SellerRepo:    postgres.NewSellerRepository(db),
			Notifications: notifications,
			Realtime:      realtime,
			Config:        cfg,
			Logger:        logger,
		}),
		ratings: NewRatingService(RatingServiceParams{
			TxManager:     postgres.NewTransactionManager(db),
			RatingRepo:    postgres.NewRatingRepository(db),
			Notifications: notifications,
			Realtime:      realtime,
			Config:        cfg,
			Logger:        logger,
		}),
		notifications: notifications,
		realtime:      realtime,
		seller:        testutil.MustCreateSeller(t, db, "alice", true),
	}
}

func TestMarketplace_ConcurrentReserveThenConfirm(t *testing.T) {
	mp := newMarketplace(t)
	ctx := context.Background()

	offer, err := mp.offers.CreateOffer(ctx, mp.seller.ID, &usecase.CreateOfferInput{MealType: entity.MealTypeLunch, Price: 12.0})
	require.NoError(t, err)

	broadcasts := mp.realtime.inRoom("")
	require.Len(t, broadcasts, 1)
	assert.Equal(t, service.EventNewOffer, broadcasts[0].event)
	announced, err := json.Marshal(broadcasts[0].payload)
	require.NoError(t, err)
	var listing map[string]any
	require.NoError(t, json.Unmarshal(announced, &listing))
	assert.Equal(t, offer.Key, listing["key"])
	assert.Equal(t, "alice", listing["seller_name"])
	assert.NotContains(t, listing, "seller_phone")
	assert.NotContains(t, listing, "reservation")
	assert.NotContains(t, listing, "updated_at")

	buyers := []*usecase.ReserveOfferInput{
		{BuyerID: "buyer_a", BuyerName: "Anna", BuyerPhone: "0501111111"},
		{BuyerID: "buyer_b", BuyerName: "Boaz", BuyerPhone: "0502222222"},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(buyers))
	for i, input := range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = mp.offers.ReserveOffer(ctx, offer.Key, input)
		}()
	}
	wg.Wait()

	winner, loser := 0, 1
	if errs[0] != nil {
		winner, loser = 1, 0
	}
	require.NoError(t, errs[winner])
	assert.ErrorIs(t, errs[loser], domainerrors.ErrOfferNotAvailable)

	sold, err := mp.offers.ConfirmReservation(ctx, offer.Key, mp.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusSold, sold.Status)

	stored, err := mp.offers.GetOffer(ctx, offer.Key)
	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusSold, stored.Status)
	assert.Equal(t, buyers[winner].BuyerID, stored.BuyerID())

	winnerRoom := entity.BuyerRecipient(buyers[winner].BuyerID).Room()
	events := mp.realtime.inRoom(winnerRoom)
	require.Len(t, events, 1)
	assert.Equal(t, service.EventReservationConfirmed, events[0].event)

	page, err := mp.notifications.List(ctx, entity.BuyerRecipient(buyers[winner].BuyerID), usecase.NotificationQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.NotificationReservationConfirmed, page.Items[0].Type)
	assert.Equal(t, mp.seller.Phone, page.Items[0].Payload["seller_phone"])

	loserRecipient := entity.BuyerRecipient(buyers[loser].BuyerID)
	assert.Empty(t, mp.realtime.inRoom(loserRecipient.Room()))
	loserPage, err := mp.notifications.List(ctx, loserRecipient, usecase.NotificationQuery{})
	require.NoError(t, err)
	assert.Empty(t, loserPage.Items)

	sellerPage, err := mp.notifications.List(ctx, entity.SellerRecipient(mp.seller.ID), usecase.NotificationQuery{})
	require.NoError(t, err)
	require.Len(t, sellerPage.Items, 1)
	assert.Equal(t, entity.NotificationNewReservation, sellerPage.Items[0].Type)

	rating, err := mp.ratings.SubmitRating(ctx, &usecase.SubmitRatingInput{
		OfferKey: offer.Key,
		BuyerID:  buyers[winner].BuyerID,
		Score:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, mp.seller.ID, rating.SellerID)

	_, err = mp.ratings.SubmitRating(ctx, &usecase.SubmitRatingInput{
		OfferKey: offer.Key,
		BuyerID:  buyers[winner].BuyerID,
		Score:    1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRatingDuplicate)
}

func TestMarketplace_RejectReturnsOfferToMarket(t *testing.T) {
	mp := newMarketplace(t)
	ctx := context.Background()

	offer, err := mp.offers.CreateOffer(ctx, mp.seller.ID, &usecase.CreateOfferInput{MealType: entity.MealTypeDinner, Price: 7.5})
	require.NoError(t, err)

	first, err := mp.offers.ReserveOffer(ctx, offer.Key, &usecase.ReserveOfferInput{BuyerName: "Anna", BuyerPhone: "0501111111"})
	require.NoError(t, err)

	rejected, err := mp.offers.RejectReservation(ctx, offer.Key, mp.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusAvailable, rejected.Status)
	assert.Nil(t, rejected.Reservation)

	second, err := mp.offers.ReserveOffer(ctx, offer.Key, &usecase.ReserveOfferInput{BuyerName: "Boaz", BuyerPhone: "0502222222"})
	require.NoError(t, err)
	assert.NotEqual(t, first.BuyerID, second.BuyerID)

	page, err := mp.notifications.List(ctx, entity.BuyerRecipient(first.BuyerID), usecase.NotificationQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.NotificationReservationRejected, page.Items[0].Type)

	_, err = mp.offers.RejectReservation(ctx, "offer_missing", mp.seller.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}
