package handler

import (
	"log/slog"
	"net/http"

	"mealmarket/internal/delivery/api/middleware"
	"mealmarket/internal/delivery/api/response"
	"mealmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the seller's push-enabled devices.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), sellerID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered")
}

func (h *DeviceHandler) ListDevices(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetSellerDevices(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), sellerID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "FCM token updated")
}

func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), sellerID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deactivated")
}
