package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
// Reservation columns are NULL exactly when status is 'available'.
type OfferModel struct {
	OfferKey    string    `gorm:"column:offer_key;type:varchar(64);primaryKey"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MealType    string    `gorm:"type:varchar(16);not null"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Details     string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(16);not null;default:'available';index"`
	BuyerID     *string   `gorm:"type:varchar(64);index"`
	BuyerName   *string   `gorm:"type:varchar(64)"`
	BuyerPhone  *string   `gorm:"type:varchar(16)"`
	ReservedAt  *time.Time
	ConfirmedAt *time.Time
	RejectedAt  *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferListingRow is the scan target of offer reads joined with seller and rating data.
type OfferListingRow struct {
	OfferModel  `gorm:"embedded"`
	SellerName  *string
	SellerPhone *string
	AvgRating   float64
	RatingCount int64
}
