package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/domain/service"
	mockRepo "mealmarket/internal/mocks/repository"
	mockSvc "mealmarket/internal/mocks/service"
	mockUsecase "mealmarket/internal/mocks/usecase"
	"mealmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingServiceMocks struct {
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	txOfferRepo   *mockRepo.MockOfferRepository
	txRatingRepo  *mockRepo.MockRatingRepository
	ratingRepo    *mockRepo.MockRatingRepository
	notifications *mockUsecase.MockNotificationUsecase
	realtime      *mockSvc.MockRealtimePublisher
}

func createTestRatingService(t *testing.T) (usecase.RatingUsecase, ratingServiceMocks) {
	m := ratingServiceMocks{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		txOfferRepo:   mockRepo.NewMockOfferRepository(t),
		txRatingRepo:  mockRepo.NewMockRatingRepository(t),
		ratingRepo:    mockRepo.NewMockRatingRepository(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		realtime:      mockSvc.NewMockRealtimePublisher(t),
	}

	svc := NewRatingService(RatingServiceParams{
		TxManager:     m.txManager,
		RatingRepo:    m.ratingRepo,
		Notifications: m.notifications,
		Realtime:      m.realtime,
		Config:        &config.Config{},
		Logger:        discardLogger(),
	})

	return svc, m
}

// expectTransaction runs the transactional callback against the factory mock.
func (m ratingServiceMocks) expectTransaction() {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewOfferRepository().Return(m.txOfferRepo)
}

func soldOffer(sellerID uuid.UUID, buyerID string) *entity.Offer {
	offer := reservedOffer(sellerID, buyerID)
	offer.Status = entity.OfferStatusSold
	confirmedAt := fixedNow
	offer.ConfirmedAt = &confirmedAt

	return offer
}

func TestRatingService_SubmitRating_Success(t *testing.T) {
	svc, m := createTestRatingService(t)
	sellerID := uuid.New()
	offer := soldOffer(sellerID, "buyer_bob")
	summary := &entity.RatingSummary{SellerID: sellerID, Average: 4.5, Total: 2, Distribution: map[int]int64{4: 1, 5: 1}}

	m.expectTransaction()
	m.txOfferRepo.EXPECT().FindOfferByKey(mock.Anything, offer.Key).Return(offer, nil)
	m.factory.EXPECT().NewRatingRepository().Return(m.txRatingRepo)
	m.txRatingRepo.EXPECT().ExistsForOfferAndBuyer(mock.Anything, offer.Key, "buyer_bob").Return(false, nil)
	m.txRatingRepo.EXPECT().
		CreateRating(mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
			return r.SellerID == sellerID && r.Score == 5 && r.Comment == "great soup"
		})).
		Return(nil)
	m.ratingRepo.EXPECT().SummarizeSeller(mock.Anything, sellerID).Return(summary, nil)
	m.notifications.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(input *usecase.NotificationInput) bool {
			return input.Type == entity.NotificationNewRating &&
				input.Recipient == entity.SellerRecipient(sellerID) &&
				input.Payload["average"] == 4.5
		})).
		Return(&entity.Notification{}, nil)
	m.realtime.EXPECT().Publish(mock.Anything, "seller_"+sellerID.String(), service.EventNewRating, mock.Anything).Return()

	rating, err := svc.SubmitRating(context.Background(), &usecase.SubmitRatingInput{
		OfferKey: offer.Key,
		BuyerID:  "buyer_bob",
		Score:    5,
		Comment:  " great soup ",
	})

	require.NoError(t, err)
	assert.Equal(t, sellerID, rating.SellerID)
	assert.NotEqual(t, uuid.Nil, rating.ID)
}

func TestRatingService_SubmitRating_NotAllowed(t *testing.T) {
	sellerID := uuid.New()

	tests := []struct {
		name  string
		offer *entity.Offer
	}{
		{name: "offer not sold yet", offer: reservedOffer(sellerID, "buyer_bob")},
		{name: "different buyer", offer: soldOffer(sellerID, "buyer_carol")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestRatingService(t)

			m.expectTransaction()
			m.txOfferRepo.EXPECT().FindOfferByKey(mock.Anything, tt.offer.Key).Return(tt.offer, nil)

			_, err := svc.SubmitRating(context.Background(), &usecase.SubmitRatingInput{
				OfferKey: tt.offer.Key,
				BuyerID:  "buyer_bob",
				Score:    3,
			})

			assert.ErrorIs(t, err, domainerrors.ErrRatingNotAllowed)
		})
	}
}

func TestRatingService_SubmitRating_Duplicate(t *testing.T) {
	t.Run("existing rating found", func(t *testing.T) {
		svc, m := createTestRatingService(t)
		offer := soldOffer(uuid.New(), "buyer_bob")

		m.expectTransaction()
		m.txOfferRepo.EXPECT().FindOfferByKey(mock.Anything, offer.Key).Return(offer, nil)
		m.factory.EXPECT().NewRatingRepository().Return(m.txRatingRepo)
		m.txRatingRepo.EXPECT().ExistsForOfferAndBuyer(mock.Anything, offer.Key, "buyer_bob").Return(true, nil)

		_, err := svc.SubmitRating(context.Background(), &usecase.SubmitRatingInput{OfferKey: offer.Key, BuyerID: "buyer_bob", Score: 4})

		assert.ErrorIs(t, err, domainerrors.ErrRatingDuplicate)
	})

	t.Run("concurrent insert hits the unique index", func(t *testing.T) {
		svc, m := createTestRatingService(t)
		offer := soldOffer(uuid.New(), "buyer_bob")

		m.expectTransaction()
		m.txOfferRepo.EXPECT().FindOfferByKey(mock.Anything, offer.Key).Return(offer, nil)
		m.factory.EXPECT().NewRatingRepository().Return(m.txRatingRepo)
		m.txRatingRepo.EXPECT().ExistsForOfferAndBuyer(mock.Anything, offer.Key, "buyer_bob").Return(false, nil)
		m.txRatingRepo.EXPECT().CreateRating(mock.Anything, mock.Anything).Return(repository.ErrDuplicateRating)

		_, err := svc.SubmitRating(context.Background(), &usecase.SubmitRatingInput{OfferKey: offer.Key, BuyerID: "buyer_bob", Score: 4})

		assert.ErrorIs(t, err, domainerrors.ErrRatingDuplicate)
	})
}

func TestRatingService_SubmitRating_OfferNotFound(t *testing.T) {
	svc, m := createTestRatingService(t)

	m.expectTransaction()
	m.txOfferRepo.EXPECT().FindOfferByKey(mock.Anything, "offer_missing").Return(nil, repository.ErrOfferNotFound)

	_, err := svc.SubmitRating(context.Background(), &usecase.SubmitRatingInput{OfferKey: "offer_missing", BuyerID: "buyer_bob", Score: 4})

	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestRatingService_SubmitRating_ValidationFailure(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SubmitRatingInput
	}{
		{name: "score too low", input: &usecase.SubmitRatingInput{OfferKey: "offer_k", BuyerID: "buyer_bob", Score: 0}},
		{name: "score too high", input: &usecase.SubmitRatingInput{OfferKey: "offer_k", BuyerID: "buyer_bob", Score: 6}},
		{name: "missing buyer", input: &usecase.SubmitRatingInput{OfferKey: "offer_k", Score: 3}},
		{name: "missing offer", input: &usecase.SubmitRatingInput{BuyerID: "buyer_bob", Score: 3}},
		{name: "comment too long", input: &usecase.SubmitRatingInput{
			OfferKey: "offer_k",
			BuyerID:  "buyer_bob",
			Score:    3,
			Comment:  strings.Repeat("x", maxRatingCommentLength+1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestRatingService(t)

			_, err := svc.SubmitRating(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRatingService_SubmitRating_SummaryFailureStillNotifies(t *testing.T) {
	svc, m := createTestRatingService(t)
	sellerID := uuid.New()
	offer := soldOffer(sellerID, "buyer_bob")

	m.expectTransaction()
	m.txOfferRepo.EXPECT().FindOfferByKey(mock.Anything, offer.Key).Return(offer, nil)
	m.factory.EXPECT().NewRatingRepository().Return(m.txRatingRepo)
	m.txRatingRepo.EXPECT().ExistsForOfferAndBuyer(mock.Anything, offer.Key, "buyer_bob").Return(false, nil)
	m.txRatingRepo.EXPECT().CreateRating(mock.Anything, mock.Anything).Return(nil)
	m.ratingRepo.EXPECT().SummarizeSeller(mock.Anything, sellerID).Return(nil, errors.New("timeout"))
	m.notifications.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(input *usecase.NotificationInput) bool {
			_, hasAverage := input.Payload["average"]

			return !hasAverage
		})).
		Return(&entity.Notification{}, nil)
	m.realtime.EXPECT().Publish(mock.Anything, mock.Anything, service.EventNewRating, mock.Anything).Return()

	_, err := svc.SubmitRating(context.Background(), &usecase.SubmitRatingInput{OfferKey: offer.Key, BuyerID: "buyer_bob", Score: 2})

	require.NoError(t, err)
}

func TestRatingService_GetSellerSummary(t *testing.T) {
	svc, m := createTestRatingService(t)
	sellerID := uuid.New()
	summary := &entity.RatingSummary{SellerID: sellerID, Distribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}

	m.ratingRepo.EXPECT().SummarizeSeller(mock.Anything, sellerID).Return(summary, nil)

	got, err := svc.GetSellerSummary(context.Background(), sellerID)

	require.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestRatingService_StoreCallsAreBounded(t *testing.T) {
	svc, m := createTestRatingService(t)
	sellerID := uuid.New()

	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ func(repository.RepositoryFactory) error) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return domainerrors.ErrRatingNotAllowed
		})
	m.ratingRepo.EXPECT().SummarizeSeller(mock.Anything, sellerID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) (*entity.RatingSummary, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(defaultStoreTimeout), deadline, time.Second)

			return &entity.RatingSummary{SellerID: sellerID}, nil
		})

	_, err := svc.SubmitRating(context.Background(), &usecase.SubmitRatingInput{OfferKey: "offer_k", BuyerID: "buyer_bob", Score: 4})
	assert.ErrorIs(t, err, domainerrors.ErrRatingNotAllowed)

	_, err = svc.GetSellerSummary(context.Background(), sellerID)
	require.NoError(t, err)
}
