package repository

import (
	"context"
	"errors"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateRating is returned when the buyer already rated the offer.
var ErrDuplicateRating = errors.New("rating already exists")

// RatingRepository defines the interface for rating-related database operations.
type RatingRepository interface {
	// CreateRating persists a rating; one per (offer, buyer).
	CreateRating(ctx context.Context, rating *entity.Rating) error

	// ExistsForOfferAndBuyer reports whether the buyer already rated the offer.
	ExistsForOfferAndBuyer(ctx context.Context, offerKey, buyerID string) (bool, error)

	// SummarizeSeller computes average, total and distribution for a seller.
	SummarizeSeller(ctx context.Context, sellerID uuid.UUID) (*entity.RatingSummary, error)
}
