package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"mealmarket/internal/delivery/api/middleware"
	"mealmarket/internal/delivery/api/response"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the seller inbox and the buyer inbox. A buyer id is its own capability.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

func (h *NotificationHandler) ListSellerNotifications(c echo.Context) error {
	recipient, err := sellerRecipient(c)
	if err != nil {
		return err
	}

	return h.list(c, recipient)
}

func (h *NotificationHandler) ListBuyerNotifications(c echo.Context) error {
	recipient, err := buyerRecipient(c)
	if err != nil {
		return err
	}

	return h.list(c, recipient)
}

func (h *NotificationHandler) SellerStats(c echo.Context) error {
	recipient, err := sellerRecipient(c)
	if err != nil {
		return err
	}

	stats, err := h.notificationUC.Stats(c.Request().Context(), recipient)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

func (h *NotificationHandler) MarkSellerNotificationRead(c echo.Context) error {
	recipient, err := sellerRecipient(c)
	if err != nil {
		return err
	}

	return h.markRead(c, recipient)
}

func (h *NotificationHandler) MarkBuyerNotificationRead(c echo.Context) error {
	recipient, err := buyerRecipient(c)
	if err != nil {
		return err
	}

	return h.markRead(c, recipient)
}

func (h *NotificationHandler) MarkAllSellerNotificationsRead(c echo.Context) error {
	recipient, err := sellerRecipient(c)
	if err != nil {
		return err
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), recipient)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated}, "All notifications marked as read")
}

func (h *NotificationHandler) DeleteSellerNotification(c echo.Context) error {
	recipient, err := sellerRecipient(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.Delete(c.Request().Context(), id, recipient); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

func (h *NotificationHandler) DeleteReadSellerNotifications(c echo.Context) error {
	recipient, err := sellerRecipient(c)
	if err != nil {
		return err
	}

	deleted, err := h.notificationUC.DeleteRead(c.Request().Context(), recipient)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Read notifications deleted")
}

func (h *NotificationHandler) list(c echo.Context, recipient entity.Recipient) error {
	var query usecase.NotificationQuery
	if err := echo.QueryParamsBinder(c).
		Int("limit", &query.Limit).
		Int("offset", &query.Offset).
		Bool("unread", &query.UnreadOnly).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("limit, offset and unread must be numbers or booleans")
	}
	if query.Limit < 0 || query.Offset < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("limit and offset must not be negative")
	}

	page, err := h.notificationUC.List(c.Request().Context(), recipient, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

func (h *NotificationHandler) markRead(c echo.Context, recipient entity.Recipient) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), id, recipient); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

func sellerRecipient(c echo.Context) (entity.Recipient, error) {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return entity.Recipient{}, err
	}

	return entity.SellerRecipient(sellerID), nil
}

func buyerRecipient(c echo.Context) (entity.Recipient, error) {
	buyerID := c.Param("buyerId")
	if !strings.HasPrefix(buyerID, entity.BuyerIDPrefix) || len(buyerID) == len(entity.BuyerIDPrefix) {
		return entity.Recipient{}, domainerrors.ErrValidationFailed.WithDetails("buyerId is not a buyer identity")
	}

	return entity.BuyerRecipient(buyerID), nil
}
