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
	"mealmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, &config.Config{})
	ctx := context.Background()
	sellerID := uuid.New()

	deviceRepo.EXPECT().FindDevicesBySeller(mock.Anything, sellerID).Return([]*entity.SellerDevice{}, nil)
	deviceRepo.EXPECT().
		CreateDevice(mock.Anything, mock.MatchedBy(func(d *entity.SellerDevice) bool {
			return d.SellerID == sellerID && d.FCMToken == "fcm-1" && d.IsActive
		})).
		Return(nil)

	device, err := svc.RegisterDevice(ctx, sellerID, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel", Platform: "android"})

	require.NoError(t, err)
	assert.Equal(t, "pixel", device.DeviceID)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_RegisterDevice_KnownDeviceRefreshesToken(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, &config.Config{})
	ctx := context.Background()
	sellerID := uuid.New()
	existing := &entity.SellerDevice{ID: uuid.New(), SellerID: sellerID, DeviceID: "pixel", FCMToken: "old"}
	refreshed := &entity.SellerDevice{ID: existing.ID, SellerID: sellerID, DeviceID: "pixel", FCMToken: "new", IsActive: true}

	deviceRepo.EXPECT().FindDevicesBySeller(mock.Anything, sellerID).Return([]*entity.SellerDevice{existing}, nil)
	deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, existing.ID, "new").Return(nil)
	deviceRepo.EXPECT().FindDeviceByID(mock.Anything, existing.ID).Return(refreshed, nil)

	device, err := svc.RegisterDevice(ctx, sellerID, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "pixel", Platform: "android"})

	require.NoError(t, err)
	assert.Equal(t, refreshed, device)
}

func TestDeviceService_UpdateFCMToken_ForeignDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, &config.Config{})
	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.SellerDevice{ID: deviceID, SellerID: uuid.New()}, nil)

	err := svc.UpdateFCMToken(ctx, uuid.New(), deviceID, "token")

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, &config.Config{})
	ctx := context.Background()
	sellerID := uuid.New()
	deviceID := uuid.New()

	deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.SellerDevice{ID: deviceID, SellerID: sellerID}, nil)
	deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID).Return(nil)

	require.NoError(t, svc.DeactivateDevice(ctx, sellerID, deviceID))
}

func TestDeviceService_DeactivateDevice_Missing(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, &config.Config{})
	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := svc.DeactivateDevice(ctx, uuid.New(), deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_GetSellerDevices_BoundedByStoreTimeout(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, &config.Config{Marketplace: config.MarketplaceConfig{StoreTimeout: 20 * time.Millisecond}})
	sellerID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesBySeller(mock.Anything, sellerID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) ([]*entity.SellerDevice, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			<-ctx.Done()

			return nil, ctx.Err()
		})

	_, err := svc.GetSellerDevices(context.Background(), sellerID)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
