package handler

import (
	"context"
	"net/http"
	"time"

	"mealmarket/internal/delivery/api/response"
	domainerrors "mealmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

type HealthHandlerParams struct {
	fx.In

	DB *gorm.DB
}

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB}
}

// Check reports healthy only when the database answers a ping.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return domainerrors.ErrUnavailable.WithDetails(err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
