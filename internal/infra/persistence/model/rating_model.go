package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel is the GORM-specific struct for the 'ratings' table.
// The composite unique index enforces one rating per buyer per offer.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferKey  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_ratings_offer_buyer"`
	BuyerID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_ratings_offer_buyer"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
