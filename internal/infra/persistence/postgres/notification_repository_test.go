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

func newTestNotification(recipient entity.Recipient, kind entity.NotificationType, createdAt time.Time) *entity.Notification {
	return &entity.Notification{
		Type:          kind,
		RecipientType: recipient.Type,
		RecipientID:   recipient.ID,
		Title:         "title",
		Message:       "message",
		Payload:       map[string]any{"offer_key": "offer_1", "price": 8.5},
		CreatedAt:     createdAt,
	}
}

func TestNotificationRepository_CreateAndFind(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	repo := postgres.NewNotificationRepository(db)
	recipient := entity.SellerRecipient(uuid.New())

	notification := newTestNotification(recipient, entity.NotificationNewReservation, time.Now().UTC())
	require.NoError(t, repo.CreateNotification(ctx, notification))
	require.NotEqual(t, uuid.Nil, notification.ID)

	found, err := repo.FindNotificationByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationNewReservation, found.Type)
	assert.Equal(t, recipient, found.Recipient())
	assert.Equal(t, "offer_1", found.Payload["offer_key"])
	assert.InDelta(t, 8.5, found.Payload["price"], 0.001)
	assert.False(t, found.IsRead)

	_, err = repo.FindNotificationByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationRepository_ListPagesNewestFirst(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	repo := postgres.NewNotificationRepository(db)
	buyer := entity.BuyerRecipient("buyer_1")
	other := entity.BuyerRecipient("buyer_2")

	base := time.Now().UTC().Add(-time.Hour)
	ids := make([]uuid.UUID, 0, 5)
	for i := 0; i < 5; i++ {
		n := newTestNotification(buyer, entity.NotificationReservationConfirmed, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.CreateNotification(ctx, n))
		ids = append(ids, n.ID)
	}
	require.NoError(t, repo.CreateNotification(ctx, newTestNotification(other, entity.NotificationReservationRejected, base)))

	page, err := repo.ListNotifications(ctx, repository.NotificationFilter{Recipient: buyer, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ID)
	assert.Equal(t, ids[3], page[1].ID)

	page, err = repo.ListNotifications(ctx, repository.NotificationFilter{Recipient: buyer, Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[0], page[0].ID)

	rows, err := repo.MarkRead(ctx, ids[4], buyer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	unread, err := repo.ListNotifications(ctx, repository.NotificationFilter{Recipient: buyer, UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, unread, 4)

	count, err := repo.CountUnread(ctx, buyer)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestNotificationRepository_OwnershipScopedWrites(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	repo := postgres.NewNotificationRepository(db)
	seller := entity.SellerRecipient(uuid.New())
	stranger := entity.SellerRecipient(uuid.New())

	n := newTestNotification(seller, entity.NotificationNewRating, time.Now().UTC())
	require.NoError(t, repo.CreateNotification(ctx, n))

	rows, err := repo.MarkRead(ctx, n.ID, stranger)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.DeleteNotification(ctx, n.ID, stranger)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.DeleteNotification(ctx, n.ID, seller)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)
}

func TestNotificationRepository_BulkOperations(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	ctx := context.Background()
	repo := postgres.NewNotificationRepository(db)
	seller := entity.SellerRecipient(uuid.New())
	now := time.Now().UTC()

	require.NoError(t, repo.CreateNotification(ctx, newTestNotification(seller, entity.NotificationNewReservation, now.Add(-10*24*time.Hour))))
	require.NoError(t, repo.CreateNotification(ctx, newTestNotification(seller, entity.NotificationNewReservation, now)))
	require.NoError(t, repo.CreateNotification(ctx, newTestNotification(seller, entity.NotificationNewRating, now)))

	byType, err := repo.CountByType(ctx, seller)
	require.NoError(t, err)
	assert.Equal(t, map[entity.NotificationType]int64{
		entity.NotificationNewReservation: 2,
		entity.NotificationNewRating:      1,
	}, byType)

	rows, err := repo.MarkAllRead(ctx, seller)
	require.NoError(t, err)
	assert.EqualValues(t, 3, rows)

	purged, err := repo.PurgeReadBefore(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	deleted, err := repo.DeleteRead(ctx, seller)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	count, err := repo.CountUnread(ctx, seller)
	require.NoError(t, err)
	assert.Zero(t, count)
}
