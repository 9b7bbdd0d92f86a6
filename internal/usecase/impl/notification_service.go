package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mealmarket/config"
	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/domain/service"
	"mealmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	defaultNotificationLimit = 50
	maxNotificationLimit     = 100
	pushTimeout              = 10 * time.Second
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushSvc          service.PushService
	defaultLimit     int
	maxLimit         int
	store            storeBound
	now              func() time.Time
	// dispatch runs the device push detached from the recording request.
	dispatch func(func())
	logger   *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushSvc          service.PushService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	defaultLimit := params.Config.Marketplace.DefaultNotificationLimit
	if defaultLimit <= 0 {
		defaultLimit = defaultNotificationLimit
	}
	maxLimit := params.Config.Marketplace.MaxNotificationLimit
	if maxLimit < defaultLimit {
		maxLimit = max(defaultLimit, maxNotificationLimit)
	}

	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushSvc:          params.PushSvc,
		defaultLimit:     defaultLimit,
		maxLimit:         maxLimit,
		store:            newStoreBound(params.Config),
		now:              func() time.Time { return time.Now().UTC() },
		dispatch:         func(fn func()) { go fn() },
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Record appends the notification and, for sellers, pushes it to their registered devices.
func (s *notificationService) Record(ctx context.Context, input *usecase.NotificationInput) (*entity.Notification, error) {
	if input == nil || input.Type == "" || input.Recipient.ID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("notification type and recipient are required")
	}

	notification := &entity.Notification{
		Type:          input.Type,
		RecipientType: input.Recipient.Type,
		RecipientID:   input.Recipient.ID,
		Title:         input.Title,
		Message:       input.Message,
		Payload:       input.Payload,
		CreatedAt:     s.now(),
	}

	storeCtx, cancel := s.store.context(ctx)
	defer cancel()

	if err := s.notificationRepo.CreateNotification(storeCtx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	if notification.RecipientType == entity.RecipientSeller && s.pushSvc != nil {
		logger := s.log(ctx)
		s.dispatch(func() {
			pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
			defer cancel()

			s.pushToSeller(pushCtx, logger, notification)
		})
	}

	return notification, nil
}

// pushToSeller sends the notification to every active device of the seller and
// deactivates devices whose tokens the push provider rejected.
func (s *notificationService) pushToSeller(ctx context.Context, logger *slog.Logger, notification *entity.Notification) {
	sellerID, err := uuid.Parse(notification.RecipientID)
	if err != nil {
		logger.Warn("Seller notification has a malformed recipient", slog.String("recipientID", notification.RecipientID))

		return
	}

	devices, err := s.deviceRepo.FindActiveDevicesBySeller(ctx, sellerID)
	if err != nil {
		logger.Error("Failed to load seller devices", slog.String("sellerID", sellerID.String()), slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"notification_id": notification.ID.String(),
		"type":            string(notification.Type),
	}
	if offerKey, ok := notification.Payload["offer_key"].(string); ok {
		data["offer_key"] = offerKey
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)
	for start := 0; start < len(tokens); start += firebaseBatchSize {
		batch := tokens[start:min(start+firebaseBatchSize, len(tokens))]

		sent, failed, invalid, err := s.pushSvc.SendBatch(ctx, batch, notification.Title, notification.Message, data)
		if err != nil {
			logger.Warn("Push batch failed", slog.Int("batchSize", len(batch)), slog.Any("error", err))
			totalFailed += len(batch)

			continue
		}

		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		if _, err := s.deviceRepo.DeactivateDevices(ctx, invalidTokens); err != nil {
			logger.Error("Failed to deactivate invalid devices", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
	}

	logger.Debug("Seller push delivered",
		slog.String("notificationID", notification.ID.String()),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("invalidTokens", len(invalidTokens)),
	)
}

// List returns a newest-first page of the recipient's notifications plus the unread count.
func (s *notificationService) List(ctx context.Context, recipient entity.Recipient, query usecase.NotificationQuery) (*entity.NotificationPage, error) {
	if err := validateRecipient(recipient); err != nil {
		return nil, err
	}

	limit := query.Limit
	switch {
	case limit <= 0:
		limit = s.defaultLimit
	case limit > s.maxLimit:
		limit = s.maxLimit
	}
	offset := max(query.Offset, 0)

	storeCtx, cancel := s.store.context(ctx)
	defer cancel()

	// One extra row tells whether another page exists.
	items, err := s.notificationRepo.ListNotifications(storeCtx, repository.NotificationFilter{
		Recipient:  recipient,
		Limit:      limit + 1,
		Offset:     offset,
		UnreadOnly: query.UnreadOnly,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	unread, err := s.notificationRepo.CountUnread(storeCtx, recipient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &entity.NotificationPage{
		Items:       items,
		UnreadCount: unread,
		Limit:       limit,
		Offset:      offset,
		HasMore:     hasMore,
	}, nil
}

// Stats summarises the recipient's inbox.
func (s *notificationService) Stats(ctx context.Context, recipient entity.Recipient) (*entity.NotificationStats, error) {
	if err := validateRecipient(recipient); err != nil {
		return nil, err
	}

	storeCtx, cancel := s.store.context(ctx)
	defer cancel()

	byType, err := s.notificationRepo.CountByType(storeCtx, recipient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications by type")
	}

	unread, err := s.notificationRepo.CountUnread(storeCtx, recipient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	stats := &entity.NotificationStats{Unread: unread, ByType: byType}
	for _, count := range byType {
		stats.Total += count
	}

	return stats, nil
}

// MarkRead acknowledges one notification. A notification addressed to someone else is Forbidden.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID, recipient entity.Recipient) error {
	if err := validateRecipient(recipient); err != nil {
		return err
	}

	storeCtx, cancel := s.store.context(ctx)
	defer cancel()

	rows, err := s.notificationRepo.MarkRead(storeCtx, id, recipient)
	if err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}
	if rows > 0 {
		return nil
	}

	return s.explainMiss(storeCtx, id)
}

// MarkAllRead acknowledges every unread notification of the recipient.
func (s *notificationService) MarkAllRead(ctx context.Context, recipient entity.Recipient) (int64, error) {
	if err := validateRecipient(recipient); err != nil {
		return 0, err
	}

	storeCtx, cancel := s.store.context(ctx)
	defer cancel()

	rows, err := s.notificationRepo.MarkAllRead(storeCtx, recipient)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications as read")
	}

	return rows, nil
}

// Delete removes one notification owned by the recipient.
func (s *notificationService) Delete(ctx context.Context, id uuid.UUID, recipient entity.Recipient) error {
	if err := validateRecipient(recipient); err != nil {
		return err
	}

	storeCtx, cancel := s.store.context(ctx)
	defer cancel()

	rows, err := s.notificationRepo.DeleteNotification(storeCtx, id, recipient)
	if err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}
	if rows > 0 {
		return nil
	}

	return s.explainMiss(storeCtx, id)
}

// DeleteRead removes the recipient's read notifications.
func (s *notificationService) DeleteRead(ctx context.Context, recipient entity.Recipient) (int64, error) {
	if err := validateRecipient(recipient); err != nil {
		return 0, err
	}

	storeCtx, cancel := s.store.context(ctx)
	defer cancel()

	rows, err := s.notificationRepo.DeleteRead(storeCtx, recipient)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete read notifications")
	}

	return rows, nil
}

// explainMiss distinguishes a missing notification from one owned by another recipient.
func (s *notificationService) explainMiss(ctx context.Context, id uuid.UUID) error {
	if _, err := s.notificationRepo.FindNotificationByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}

	return domainerrors.ErrNotificationForbidden
}

func validateRecipient(recipient entity.Recipient) error {
	if strings.TrimSpace(recipient.ID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("recipient is required")
	}

	switch recipient.Type {
	case entity.RecipientSeller, entity.RecipientBuyer:
		return nil
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown recipient type")
	}
}
