package handler

import (
	"log/slog"
	"net/http"

	"mealmarket/internal/delivery/api/middleware"
	"mealmarket/internal/delivery/api/response"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/infra/metrics"
	"mealmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler serves listings and the reservation flow.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

type CreateOfferRequest struct {
	MealType string  `json:"meal_type" validate:"required,mealtype"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Details  string  `json:"details" validate:"max=500"`
}

type ReserveOfferRequest struct {
	BuyerID    string `json:"buyer_id" validate:"omitempty,buyerid"`
	BuyerName  string `json:"buyer_name" validate:"required,buyername"`
	BuyerPhone string `json:"buyer_phone" validate:"required,localphone"`
}

// ListOffers returns every listed offer, newest first.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	offers, err := h.offerUC.ListActiveOffers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*entity.OfferListing, len(offers))
	for i, offer := range offers {
		views[i] = offer.Listing()
	}

	return response.Success(c, http.StatusOK, views, "")
}

func (h *OfferHandler) GetOffer(c echo.Context) error {
	offer, err := h.offerUC.GetOffer(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer.Listing(), "")
}

// GetOfferQR renders the offer share link as a PNG.
func (h *OfferHandler) GetOfferQR(c echo.Context) error {
	png, err := h.offerUC.GenerateOfferQR(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *OfferHandler) CreateOffer(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	var req CreateOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), sellerID, &usecase.CreateOfferInput{
		MealType: entity.MealType(req.MealType),
		Price:    req.Price,
		Details:  req.Details,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, offer, "Offer published")
}

func (h *OfferHandler) ListMyOffers(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	offers, err := h.offerUC.ListSellerOffers(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// ListReservations returns the seller's offers waiting for a decision, including buyer contact data.
func (h *OfferHandler) ListReservations(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	offers, err := h.offerUC.ListReservations(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// ReserveOffer needs no account: the buyer identity comes from the payload or is issued here.
func (h *OfferHandler) ReserveOffer(c echo.Context) error {
	var req ReserveOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	receipt, err := h.offerUC.ReserveOffer(c.Request().Context(), c.Param("key"), &usecase.ReserveOfferInput{
		BuyerID:    req.BuyerID,
		BuyerName:  req.BuyerName,
		BuyerPhone: req.BuyerPhone,
	})
	observeTransition("reserve", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receipt, "Reservation sent to the seller")
}

func (h *OfferHandler) ConfirmReservation(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	offer, err := h.offerUC.ConfirmReservation(c.Request().Context(), c.Param("key"), sellerID)
	observeTransition("confirm", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Reservation confirmed")
}

func (h *OfferHandler) RejectReservation(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	offer, err := h.offerUC.RejectReservation(c.Request().Context(), c.Param("key"), sellerID)
	observeTransition("reject", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Reservation rejected, the offer is available again")
}

func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	sellerID, err := middleware.GetSellerID(c)
	if err != nil {
		return err
	}

	err = h.offerUC.RemoveOffer(c.Request().Context(), c.Param("key"), sellerID)
	observeTransition("remove", err)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer removed")
}

func observeTransition(action string, err error) {
	metrics.OfferTransitions.WithLabelValues(action, transitionResult(err)).Inc()
}

func transitionResult(err error) string {
	var appErr domainerrors.AppError
	switch {
	case err == nil:
		return "success"
	case !errors.As(err, &appErr):
		return "error"
	case appErr.HTTPCode() == http.StatusConflict:
		return "conflict"
	case appErr.HTTPCode() == http.StatusNotFound:
		return "not_found"
	case appErr.HTTPCode() == http.StatusBadRequest:
		return "invalid"
	default:
		return "error"
	}
}
