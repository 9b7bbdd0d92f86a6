package impl

import (
	"context"
	"testing"
	"time"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	mockRepo "mealmarket/internal/mocks/repository"
	mockSvc "mealmarket/internal/mocks/service"
	"mealmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockPushService,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		PushSvc:          pushSvc,
		Config:           &config.Config{},
		Logger:           discardLogger(),
	})
	concrete := svc.(*notificationService)
	concrete.now = func() time.Time { return fixedNow }
	concrete.dispatch = func(fn func()) { fn() }

	return svc, notificationRepo, deviceRepo, pushSvc
}

func TestNotificationService_Record_BuyerIsNotPushed(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.RecipientType == entity.RecipientBuyer && n.RecipientID == "buyer_bob" && n.CreatedAt.Equal(fixedNow)
		})).
		Return(nil)

	notification, err := svc.Record(ctx, &usecase.NotificationInput{
		Type:      entity.NotificationReservationConfirmed,
		Recipient: entity.BuyerRecipient("buyer_bob"),
		Title:     "Reservation confirmed",
		Message:   "alice confirmed your dinner reservation",
		Payload:   map[string]any{"offer_key": "offer_k"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationReservationConfirmed, notification.Type)
	assert.False(t, notification.IsRead)
}

func TestNotificationService_Record_PushesSellerDevicesAndDeactivatesInvalidTokens(t *testing.T) {
	svc, notificationRepo, deviceRepo, pushSvc := createTestNotificationService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) { n.ID = uuid.New() }).
		Return(nil)
	deviceRepo.EXPECT().FindActiveDevicesBySeller(mock.Anything, sellerID).Return([]*entity.SellerDevice{
		{ID: uuid.New(), SellerID: sellerID, FCMToken: "good-token", IsActive: true},
		{ID: uuid.New(), SellerID: sellerID, FCMToken: "stale-token", IsActive: true},
	}, nil)
	pushSvc.EXPECT().
		SendBatch(mock.Anything, []string{"good-token", "stale-token"}, "New reservation request", "Bob reserved your dinner offer",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["type"] == string(entity.NotificationNewReservation) && data["offer_key"] == "offer_k"
			})).
		Return(1, 1, []string{"stale-token"}, nil)
	deviceRepo.EXPECT().DeactivateDevices(mock.Anything, []string{"stale-token"}).Return(1, nil)

	_, err := svc.Record(ctx, &usecase.NotificationInput{
		Type:      entity.NotificationNewReservation,
		Recipient: entity.SellerRecipient(sellerID),
		Title:     "New reservation request",
		Message:   "Bob reserved your dinner offer",
		Payload:   map[string]any{"offer_key": "offer_k"},
	})

	require.NoError(t, err)
}

func TestNotificationService_Record_PushFailureIsNotReturned(t *testing.T) {
	svc, notificationRepo, deviceRepo, pushSvc := createTestNotificationService(t)
	sellerID := uuid.New()

	notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(nil)
	deviceRepo.EXPECT().FindActiveDevicesBySeller(mock.Anything, sellerID).Return([]*entity.SellerDevice{
		{FCMToken: "token"},
	}, nil)
	pushSvc.EXPECT().SendBatch(mock.Anything, []string{"token"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("firebase unavailable"))

	_, err := svc.Record(context.Background(), &usecase.NotificationInput{
		Type:      entity.NotificationNewRating,
		Recipient: entity.SellerRecipient(sellerID),
	})

	require.NoError(t, err)
}

func TestNotificationService_Record_ValidationFailure(t *testing.T) {
	svc, _, _, _ := createTestNotificationService(t)

	_, err := svc.Record(context.Background(), &usecase.NotificationInput{Type: entity.NotificationNewRating})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_List_DefaultLimit(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	recipient := entity.BuyerRecipient("buyer_bob")
	items := []*entity.Notification{{ID: uuid.New()}, {ID: uuid.New()}}

	notificationRepo.EXPECT().ListNotifications(mock.Anything, repository.NotificationFilter{
		Recipient: recipient,
		Limit:     defaultNotificationLimit + 1,
	}).Return(items, nil)
	notificationRepo.EXPECT().CountUnread(mock.Anything, recipient).Return(2, nil)

	page, err := svc.List(ctx, recipient, usecase.NotificationQuery{})

	require.NoError(t, err)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, defaultNotificationLimit, page.Limit)
	assert.Equal(t, int64(2), page.UnreadCount)
	assert.False(t, page.HasMore)
}

func TestNotificationService_List_ClampsLimitAndReportsMore(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	recipient := entity.SellerRecipient(uuid.New())

	items := make([]*entity.Notification, maxNotificationLimit+1)
	for i := range items {
		items[i] = &entity.Notification{ID: uuid.New()}
	}

	notificationRepo.EXPECT().ListNotifications(mock.Anything, repository.NotificationFilter{
		Recipient:  recipient,
		Limit:      maxNotificationLimit + 1,
		Offset:     20,
		UnreadOnly: true,
	}).Return(items, nil)
	notificationRepo.EXPECT().CountUnread(mock.Anything, recipient).Return(250, nil)

	page, err := svc.List(ctx, recipient, usecase.NotificationQuery{Limit: 1000, Offset: 20, UnreadOnly: true})

	require.NoError(t, err)
	assert.Len(t, page.Items, maxNotificationLimit)
	assert.Equal(t, maxNotificationLimit, page.Limit)
	assert.Equal(t, 20, page.Offset)
	assert.True(t, page.HasMore)
}

func TestNotificationService_List_RejectsUnknownRecipient(t *testing.T) {
	svc, _, _, _ := createTestNotificationService(t)

	_, err := svc.List(context.Background(), entity.Recipient{Type: "admin", ID: "1"}, usecase.NotificationQuery{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_Stats(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	recipient := entity.SellerRecipient(uuid.New())

	notificationRepo.EXPECT().CountByType(mock.Anything, recipient).Return(map[entity.NotificationType]int64{
		entity.NotificationNewReservation: 3,
		entity.NotificationNewRating:      2,
	}, nil)
	notificationRepo.EXPECT().CountUnread(mock.Anything, recipient).Return(1, nil)

	stats, err := svc.Stats(ctx, recipient)

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(1), stats.Unread)
	assert.Equal(t, int64(3), stats.ByType[entity.NotificationNewReservation])
}

func TestNotificationService_MarkRead(t *testing.T) {
	recipient := entity.BuyerRecipient("buyer_bob")
	id := uuid.New()

	tests := []struct {
		name     string
		setup    func(repo *mockRepo.MockNotificationRepository)
		expected error
	}{
		{
			name: "owned notification",
			setup: func(repo *mockRepo.MockNotificationRepository) {
				repo.EXPECT().MarkRead(mock.Anything, id, recipient).Return(1, nil)
			},
		},
		{
			name: "addressed to someone else",
			setup: func(repo *mockRepo.MockNotificationRepository) {
				repo.EXPECT().MarkRead(mock.Anything, id, recipient).Return(0, nil)
				repo.EXPECT().FindNotificationByID(mock.Anything, id).Return(&entity.Notification{
					ID:            id,
					RecipientType: entity.RecipientBuyer,
					RecipientID:   "buyer_other",
				}, nil)
			},
			expected: domainerrors.ErrNotificationForbidden,
		},
		{
			name: "missing",
			setup: func(repo *mockRepo.MockNotificationRepository) {
				repo.EXPECT().MarkRead(mock.Anything, id, recipient).Return(0, nil)
				repo.EXPECT().FindNotificationByID(mock.Anything, id).Return(nil, repository.ErrNotificationNotFound)
			},
			expected: domainerrors.ErrNotificationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, notificationRepo, _, _ := createTestNotificationService(t)
			tt.setup(notificationRepo)

			err := svc.MarkRead(context.Background(), id, recipient)

			if tt.expected == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestNotificationService_Delete_Forbidden(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	recipient := entity.SellerRecipient(uuid.New())
	id := uuid.New()

	notificationRepo.EXPECT().DeleteNotification(mock.Anything, id, recipient).Return(0, nil)
	notificationRepo.EXPECT().FindNotificationByID(mock.Anything, id).Return(&entity.Notification{ID: id}, nil)

	err := svc.Delete(context.Background(), id, recipient)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationForbidden)
}

func TestNotificationService_BulkOperations(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	recipient := entity.BuyerRecipient("buyer_bob")

	notificationRepo.EXPECT().MarkAllRead(mock.Anything, recipient).Return(4, nil)
	notificationRepo.EXPECT().DeleteRead(mock.Anything, recipient).Return(6, nil)

	marked, err := svc.MarkAllRead(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(4), marked)

	deleted, err := svc.DeleteRead(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(6), deleted)
}

func TestNotificationService_StoreCallsAreBounded(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Config:           &config.Config{Marketplace: config.MarketplaceConfig{StoreTimeout: 20 * time.Millisecond}},
		Logger:           discardLogger(),
	})
	recipient := entity.BuyerRecipient("buyer_bob")

	// a stalled store only returns once the caller gives up
	notificationRepo.EXPECT().ListNotifications(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ repository.NotificationFilter) ([]*entity.Notification, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			<-ctx.Done()

			return nil, ctx.Err()
		})
	notificationRepo.EXPECT().MarkAllRead(mock.Anything, recipient).
		RunAndReturn(func(ctx context.Context, _ entity.Recipient) (int64, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now(), deadline, time.Second)

			return 0, nil
		})

	start := time.Now()
	_, err := svc.List(context.Background(), recipient, usecase.NotificationQuery{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)

	_, err = svc.MarkAllRead(context.Background(), recipient)
	require.NoError(t, err)
}
