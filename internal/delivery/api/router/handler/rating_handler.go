package handler

import (
	"log/slog"
	"net/http"

	"mealmarket/internal/delivery/api/response"
	"mealmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

type SubmitRatingRequest struct {
	OfferKey string `json:"offer_key" validate:"required"`
	BuyerID  string `json:"buyer_id" validate:"required,buyerid"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=500"`
}

// SubmitRating lets the buyer of a sold offer rate its seller once.
func (h *RatingHandler) SubmitRating(c echo.Context) error {
	var req SubmitRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rating, err := h.ratingUC.SubmitRating(c.Request().Context(), &usecase.SubmitRatingInput{
		OfferKey: req.OfferKey,
		BuyerID:  req.BuyerID,
		Score:    req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, rating, "Thanks for rating")
}

func (h *RatingHandler) GetSellerSummary(c echo.Context) error {
	sellerID, err := uuidParam(c, "sellerId")
	if err != nil {
		return err
	}

	summary, err := h.ratingUC.GetSellerSummary(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}
