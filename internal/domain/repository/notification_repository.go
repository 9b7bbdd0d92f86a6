package repository

import (
	"context"
	"errors"
	"time"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationFilter selects a page of a recipient's notifications.
type NotificationFilter struct {
	Recipient  entity.Recipient
	Limit      int
	Offset     int
	UnreadOnly bool
}

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification appends a notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications retrieves a newest-first page for a recipient.
	ListNotifications(ctx context.Context, filter NotificationFilter) ([]*entity.Notification, error)

	// CountUnread counts a recipient's unread notifications.
	CountUnread(ctx context.Context, recipient entity.Recipient) (int64, error)

	// CountByType counts a recipient's notifications grouped by type.
	CountByType(ctx context.Context, recipient entity.Recipient) (map[entity.NotificationType]int64, error)

	// MarkRead sets is_read on one notification owned by the recipient.
	MarkRead(ctx context.Context, id uuid.UUID, recipient entity.Recipient) (int64, error)

	// MarkAllRead sets is_read on every unread notification of the recipient.
	MarkAllRead(ctx context.Context, recipient entity.Recipient) (int64, error)

	// DeleteNotification removes one notification owned by the recipient.
	DeleteNotification(ctx context.Context, id uuid.UUID, recipient entity.Recipient) (int64, error)

	// DeleteRead removes the recipient's read notifications.
	DeleteRead(ctx context.Context, recipient entity.Recipient) (int64, error)

	// PurgeReadBefore removes read notifications created before the cutoff, for every recipient.
	PurgeReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
