// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mealmarket/config"
	"mealmarket/internal/delivery/api/middleware"
	"mealmarket/internal/delivery/api/router/handler"
	"mealmarket/internal/domain/entity"
	"mealmarket/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	OfferHandler        *handler.OfferHandler
	NotificationHandler *handler.NotificationHandler
	RatingHandler       *handler.RatingHandler
	DeviceHandler       *handler.DeviceHandler
	RealtimeHandler     *handler.RealtimeHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	offerHandler        *handler.OfferHandler
	notificationHandler *handler.NotificationHandler
	ratingHandler       *handler.RatingHandler
	deviceHandler       *handler.DeviceHandler
	realtimeHandler     *handler.RealtimeHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(params RouterParams) *router {
	return &router{
		offerHandler:        params.OfferHandler,
		notificationHandler: params.NotificationHandler,
		ratingHandler:       params.RatingHandler,
		deviceHandler:       params.DeviceHandler,
		realtimeHandler:     params.RealtimeHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// MetricsPath is where Prometheus scrapes, or "" when metrics are off.
func MetricsPath(cfg *config.Config) string {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return ""
	}
	if cfg.Metrics.Path == "" {
		return defaultMetricsPath
	}

	return cfg.Metrics.Path
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)
	if path := MetricsPath(r.config); path != "" {
		e.GET(path, echo.WrapHandler(metrics.Handler()))
	}

	e.GET("/ws", r.realtimeHandler.Connect)

	seller := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleSeller)}

	// Static segments are registered before :key so my-offers and reservations never match as keys.
	offers := e.Group("/offers")
	{
		offers.GET("", r.offerHandler.ListOffers)
		offers.POST("", r.offerHandler.CreateOffer, seller...)
		offers.GET("/my-offers", r.offerHandler.ListMyOffers, seller...)
		offers.GET("/reservations", r.offerHandler.ListReservations, seller...)
		offers.GET("/:key", r.offerHandler.GetOffer)
		offers.GET("/:key/qr", r.offerHandler.GetOfferQR)
		offers.POST("/:key/reserve", r.offerHandler.ReserveOffer)
		offers.POST("/:key/confirm", r.offerHandler.ConfirmReservation, seller...)
		offers.POST("/:key/reject", r.offerHandler.RejectReservation, seller...)
		offers.DELETE("/:key", r.offerHandler.DeleteOffer, seller...)
	}

	notifications := e.Group("/notifications", seller...)
	{
		notifications.GET("", r.notificationHandler.ListSellerNotifications)
		notifications.GET("/stats", r.notificationHandler.SellerStats)
		notifications.PUT("/read-all", r.notificationHandler.MarkAllSellerNotificationsRead)
		notifications.PUT("/:id/read", r.notificationHandler.MarkSellerNotificationRead)
		notifications.DELETE("/read", r.notificationHandler.DeleteReadSellerNotifications)
		notifications.DELETE("/:id", r.notificationHandler.DeleteSellerNotification)
	}

	buyers := e.Group("/buyers/:buyerId")
	{
		buyers.GET("/notifications", r.notificationHandler.ListBuyerNotifications)
		buyers.PUT("/notifications/:id/read", r.notificationHandler.MarkBuyerNotificationRead)
	}

	ratings := e.Group("/ratings")
	{
		ratings.POST("", r.ratingHandler.SubmitRating)
		ratings.GET("/sellers/:sellerId", r.ratingHandler.GetSellerSummary)
	}

	devices := e.Group("/devices", seller...)
	{
		devices.POST("", r.deviceHandler.RegisterDevice)
		devices.GET("", r.deviceHandler.ListDevices)
		devices.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
