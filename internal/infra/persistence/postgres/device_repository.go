package postgres

import (
	"context"
	"time"

	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a seller.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.SellerDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.SellerDevice, error) {
	var deviceM model.SellerDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesBySeller retrieves all devices for a seller (including inactive, excluding soft-deleted).
func (repo *deviceRepository) FindDevicesBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.SellerDevice, error) {
	return repo.findDevices(ctx, "failed to find devices by seller", "seller_id = ?", sellerID)
}

// FindActiveDevicesBySeller retrieves all active devices for a seller.
func (repo *deviceRepository) FindActiveDevicesBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.SellerDevice, error) {
	return repo.findDevices(ctx, "failed to find active devices by seller", "seller_id = ? AND is_active = ?", sellerID, true)
}

func (repo *deviceRepository) findDevices(ctx context.Context, failure, query string, args ...any) ([]*entity.SellerDevice, error) {
	var deviceModels []*model.SellerDeviceModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	devices := make([]*entity.SellerDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken replaces the FCM token of a device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevices marks every device holding one of the tokens inactive.
func (repo *deviceRepository) DeactivateDevices(ctx context.Context, fcmTokens []string) (int64, error) {
	if len(fcmTokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SellerDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", fcmTokens, true).
		Update("is_active", false)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices")
	}

	return result.RowsAffected, nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SellerDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// PurgeInactiveBefore hard-deletes inactive or soft-deleted devices last touched before cutoff.
func (repo *deviceRepository) PurgeInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Unscoped().
		Where("(is_active = ? OR deleted_at IS NOT NULL) AND updated_at < ?", false, cutoff).
		Delete(&model.SellerDeviceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge inactive devices")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM SellerDeviceModel to a domain SellerDevice entity.
func toDeviceDomain(data *model.SellerDeviceModel) *entity.SellerDevice {
	if data == nil {
		return nil
	}

	return &entity.SellerDevice{
		ID:        data.ID,
		SellerID:  data.SellerID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain SellerDevice entity to a GORM SellerDeviceModel.
func fromDeviceDomain(data *entity.SellerDevice) *model.SellerDeviceModel {
	if data == nil {
		return nil
	}

	return &model.SellerDeviceModel{
		ID:        data.ID,
		SellerID:  data.SellerID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
