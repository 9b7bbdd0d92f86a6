package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	store      storeBound
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, cfg *config.Config) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		store:      newStoreBound(cfg),
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, sellerID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.SellerDevice, error) {
	ctx, cancel := s.store.context(ctx)
	defer cancel()

	devices, err := s.deviceRepo.FindDevicesBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by seller: %w", err)
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, fmt.Errorf("failed to update FCM token: %w", err)
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to find device by ID: %w", err)
		}

		return updatedDevice, nil
	}

	now := time.Now().UTC()
	device := &entity.SellerDevice{
		ID:        uuid.New(),
		SellerID:  sellerID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, sellerID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	ctx, cancel := s.store.context(ctx)
	defer cancel()

	if _, err := s.ownedDevice(ctx, sellerID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}

	return nil
}

// GetSellerDevices retrieves all active devices for a seller
func (s *deviceService) GetSellerDevices(ctx context.Context, sellerID uuid.UUID) ([]*entity.SellerDevice, error) {
	ctx, cancel := s.store.context(ctx)
	defer cancel()

	devices, err := s.deviceRepo.FindActiveDevicesBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active devices by seller: %w", err)
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, sellerID, deviceID uuid.UUID) error {
	ctx, cancel := s.store.context(ctx)
	defer cancel()

	if _, err := s.ownedDevice(ctx, sellerID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

// ownedDevice loads a device and hides devices of other sellers behind not found.
func (s *deviceService) ownedDevice(ctx context.Context, sellerID, deviceID uuid.UUID) (*entity.SellerDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.SellerID != sellerID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}
