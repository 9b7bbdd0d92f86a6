package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a buyer's score for the seller of a sold offer.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	SellerID  uuid.UUID `json:"seller_id"`
	OfferKey  string    `json:"offer_key"`
	BuyerID   string    `json:"buyer_id"`
	Score     int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingAggregate is the average and count shown next to a seller.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RatingSummary extends the aggregate with the per-score distribution.
type RatingSummary struct {
	SellerID     uuid.UUID     `json:"seller_id"`
	Average      float64       `json:"average"`
	Total        int64         `json:"total"`
	Distribution map[int]int64 `json:"distribution"`
}
