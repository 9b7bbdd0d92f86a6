package usecase

import (
	"context"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationInput describes a notification to record
type NotificationInput struct {
	Type      entity.NotificationType
	Recipient entity.Recipient
	Title     string
	Message   string
	Payload   map[string]any
}

// NotificationQuery selects a page of notifications
type NotificationQuery struct {
	Limit      int
	Offset     int
	UnreadOnly bool
}

// NotificationUsecase is the notification sink and the recipient-facing inbox
type NotificationUsecase interface {
	// Record durably appends a notification before returning
	Record(ctx context.Context, input *NotificationInput) (*entity.Notification, error)

	// List returns a newest-first page plus the unread count
	List(ctx context.Context, recipient entity.Recipient, query NotificationQuery) (*entity.NotificationPage, error)

	// Stats summarises the recipient's inbox
	Stats(ctx context.Context, recipient entity.Recipient) (*entity.NotificationStats, error)

	// MarkRead acknowledges one notification; only its recipient may do so
	MarkRead(ctx context.Context, id uuid.UUID, recipient entity.Recipient) error

	// MarkAllRead acknowledges every unread notification of the recipient
	MarkAllRead(ctx context.Context, recipient entity.Recipient) (int64, error)

	// Delete removes one notification owned by the recipient
	Delete(ctx context.Context, id uuid.UUID, recipient entity.Recipient) error

	// DeleteRead removes the recipient's read notifications
	DeleteRead(ctx context.Context, recipient entity.Recipient) (int64, error)
}
