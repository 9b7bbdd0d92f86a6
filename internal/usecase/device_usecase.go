package usecase

import (
	"context"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for seller device management
type DeviceUsecase interface {
	// RegisterDevice registers a new device or updates an existing one
	RegisterDevice(ctx context.Context, sellerID uuid.UUID, deviceInfo *DeviceInfo) (*entity.SellerDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, sellerID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetSellerDevices retrieves all active devices for a seller
	GetSellerDevices(ctx context.Context, sellerID uuid.UUID) ([]*entity.SellerDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, sellerID, deviceID uuid.UUID) error
}
