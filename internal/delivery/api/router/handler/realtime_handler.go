package handler

import (
	"log/slog"

	"mealmarket/internal/delivery/api/middleware"
	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/infra/realtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RealtimeHandlerParams struct {
	fx.In

	Hub            *realtime.Hub
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// RealtimeHandler upgrades /ws connections onto the hub.
type RealtimeHandler struct {
	hub    *realtime.Hub
	auth   *middleware.AuthMiddleware
	logger *slog.Logger
}

func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		hub:    params.Hub,
		auth:   params.AuthMiddleware,
		logger: params.Logger,
	}
}

// Connect serves one websocket until the client leaves. A token is optional and only needed to join seller rooms.
func (h *RealtimeHandler) Connect(c echo.Context) error {
	sellerID, err := h.auth.OptionalSeller(c)
	if err != nil {
		return err
	}

	if err := h.hub.Serve(c.Response(), c.Request(), sellerID); err != nil {
		// the upgrader has already written the HTTP error
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Debug("Websocket upgrade failed", slog.Any("error", err))
	}

	return nil
}
