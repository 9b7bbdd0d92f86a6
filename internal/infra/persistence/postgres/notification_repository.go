package postgres

import (
	"context"
	"encoding/json"
	"time"

	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification appends a notification. IDs are UUIDv7 so they sort by creation.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate notification ID")
		}
		notification.ID = id
	}

	notificationM, err := fromNotificationDomain(notification)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListNotifications retrieves a newest-first page of a recipient's notifications.
func (repo *notificationRepository) ListNotifications(ctx context.Context, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.forRecipient(ctx, filter.Recipient)
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread counts a recipient's unread notifications.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipient entity.Recipient) (int64, error) {
	var count int64

	if err := repo.forRecipient(ctx, recipient).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

type notificationTypeCount struct {
	Type  string
	Count int64
}

// CountByType counts a recipient's notifications grouped by type.
func (repo *notificationRepository) CountByType(ctx context.Context, recipient entity.Recipient) (map[entity.NotificationType]int64, error) {
	var rows []notificationTypeCount

	if err := repo.forRecipient(ctx, recipient).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications by type")
	}

	counts := make(map[entity.NotificationType]int64, len(rows))
	for _, row := range rows {
		counts[entity.NotificationType(row.Type)] = row.Count
	}

	return counts, nil
}

// MarkRead sets is_read on one notification owned by the recipient.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, recipient entity.Recipient) (int64, error) {
	result := repo.forRecipient(ctx, recipient).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark notification as read")
	}

	return result.RowsAffected, nil
}

// MarkAllRead sets is_read on every unread notification of the recipient.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipient entity.Recipient) (int64, error) {
	result := repo.forRecipient(ctx, recipient).
		Where("is_read = ?", false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications as read")
	}

	return result.RowsAffected, nil
}

// DeleteNotification removes one notification owned by the recipient.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID, recipient entity.Recipient) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("recipient_type = ? AND recipient_id = ? AND id = ?", string(recipient.Type), recipient.ID, id).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notification")
	}

	return result.RowsAffected, nil
}

// DeleteRead removes the recipient's read notifications.
func (repo *notificationRepository) DeleteRead(ctx context.Context, recipient entity.Recipient) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("recipient_type = ? AND recipient_id = ? AND is_read = ?", string(recipient.Type), recipient.ID, true).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete read notifications")
	}

	return result.RowsAffected, nil
}

// PurgeReadBefore removes read notifications created before cutoff.
func (repo *notificationRepository) PurgeReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge read notifications")
	}

	return result.RowsAffected, nil
}

func (repo *notificationRepository) forRecipient(ctx context.Context, recipient entity.Recipient) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_type = ? AND recipient_id = ?", string(recipient.Type), recipient.ID)
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
// A payload that fails to decode is returned empty rather than failing the read.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	payload := map[string]any{}
	if len(data.Payload) > 0 {
		_ = json.Unmarshal(data.Payload, &payload)
	}

	return &entity.Notification{
		ID:            data.ID,
		Type:          entity.NotificationType(data.Type),
		RecipientType: entity.RecipientType(data.RecipientType),
		RecipientID:   data.RecipientID,
		Title:         data.Title,
		Message:       data.Message,
		Payload:       payload,
		IsRead:        data.IsRead,
		CreatedAt:     data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	payload := data.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode notification payload")
	}

	return &model.NotificationModel{
		ID:            data.ID,
		Type:          string(data.Type),
		RecipientType: string(data.RecipientType),
		RecipientID:   data.RecipientID,
		Title:         data.Title,
		Message:       data.Message,
		Payload:       datatypes.JSON(raw),
		IsRead:        data.IsRead,
		CreatedAt:     data.CreatedAt,
	}, nil
}
