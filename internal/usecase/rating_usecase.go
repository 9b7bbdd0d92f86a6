package usecase

import (
	"context"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitRatingInput is a buyer's rating of a sold offer
type SubmitRatingInput struct {
	OfferKey string `json:"offer_key"`
	BuyerID  string `json:"buyer_id"`
	Score    int    `json:"rating"`
	Comment  string `json:"comment"`
}

// RatingUsecase defines rating submission and seller summaries
type RatingUsecase interface {
	// SubmitRating records the buyer's rating of the seller of a sold offer, once per offer
	SubmitRating(ctx context.Context, input *SubmitRatingInput) (*entity.Rating, error)

	// GetSellerSummary returns average, total and distribution for a seller
	GetSellerSummary(ctx context.Context, sellerID uuid.UUID) (*entity.RatingSummary, error)
}
