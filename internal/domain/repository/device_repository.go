package repository

import (
	"context"
	"errors"
	"time"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the FCM token is already registered.
	ErrDuplicateDevice = errors.New("device already registered")
)

// DeviceRepository defines the interface for seller device operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a seller.
	CreateDevice(ctx context.Context, device *entity.SellerDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.SellerDevice, error)

	// FindDevicesBySeller retrieves all devices of a seller, including inactive ones.
	FindDevicesBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.SellerDevice, error)

	// FindActiveDevicesBySeller retrieves the devices that should receive pushes.
	FindActiveDevicesBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.SellerDevice, error)

	// UpdateFCMToken replaces the token of a device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevices marks the devices holding any of the tokens inactive.
	DeactivateDevices(ctx context.Context, fcmTokens []string) (int64, error)

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// PurgeInactiveBefore permanently removes inactive or deleted devices untouched since the cutoff.
	PurgeInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
