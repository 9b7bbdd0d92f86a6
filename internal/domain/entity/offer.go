// Package entity contains the core business objects of the project.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OfferStatus is the availability state of an offer.
type OfferStatus string

const (
	OfferStatusAvailable OfferStatus = "available"
	OfferStatusReserved  OfferStatus = "reserved"
	OfferStatusSold      OfferStatus = "sold"
)

// Valid reports whether s is one of the three offer states.
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusAvailable, OfferStatusReserved, OfferStatusSold:
		return true
	default:
		return false
	}
}

// MealType is the fixed meal enumeration.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// Valid reports whether m is a known meal type.
func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	default:
		return false
	}
}

// Offer bounds and identifier prefixes.
const (
	MinOfferPrice    = 0.5
	MaxOfferPrice    = 1000.0
	MaxDetailsLength = 500
	MinBuyerNameLen  = 2
	MaxBuyerNameLen  = 50
	OfferKeyPrefix   = "offer_"
	BuyerIDPrefix    = "buyer_"
)

var localMobilePattern = regexp.MustCompile(`^05[0-9]{8}$`)

// ValidLocalPhone reports whether phone is a ten digit local mobile number starting with 05.
func ValidLocalPhone(phone string) bool {
	return localMobilePattern.MatchString(phone)
}

// ValidBuyerName reports whether the trimmed name has an acceptable length.
func ValidBuyerName(name string) bool {
	n := len([]rune(strings.TrimSpace(name)))

	return n >= MinBuyerNameLen && n <= MaxBuyerNameLen
}

// Reservation is a buyer's claim on an offer.
type Reservation struct {
	BuyerID    string    `json:"buyer_id"`
	BuyerName  string    `json:"buyer_name"`
	BuyerPhone string    `json:"buyer_phone"`
	ReservedAt time.Time `json:"reserved_at"`
}

// Offer is a seller's posted meal.
type Offer struct {
	Key         string       `json:"key"`
	SellerID    uuid.UUID    `json:"seller_id"`
	SellerName  string       `json:"seller_name,omitempty"`
	SellerPhone string       `json:"seller_phone,omitempty"`
	MealType    MealType     `json:"meal_type"`
	Price       float64      `json:"price"`
	Details     string       `json:"details,omitempty"`
	Status      OfferStatus  `json:"status"`
	Reservation *Reservation `json:"reservation,omitempty"`
	ConfirmedAt *time.Time   `json:"confirmed_at,omitempty"`
	RejectedAt  *time.Time   `json:"rejected_at,omitempty"`
	// SellerRating is the seller's aggregate at read time.
	SellerRating RatingAggregate `json:"seller_rating"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewOfferKey returns a fresh opaque offer key.
func NewOfferKey() string {
	return OfferKeyPrefix + uuid.NewString()
}

// NewBuyerID returns a fresh buyer identity.
func NewBuyerID() string {
	return BuyerIDPrefix + uuid.NewString()
}

// IsReservable reports whether a buyer may reserve the offer.
func (o *Offer) IsReservable() bool {
	return o.Status == OfferStatusAvailable
}

// IsOwnedBy reports whether sellerID owns the offer.
func (o *Offer) IsOwnedBy(sellerID uuid.UUID) bool {
	return sellerID != uuid.Nil && o.SellerID == sellerID
}

// BuyerID returns the active reservation's buyer, or empty.
func (o *Offer) BuyerID() string {
	if o.Reservation == nil {
		return ""
	}

	return o.Reservation.BuyerID
}

// Consistent reports whether the reservation record agrees with the status.
func (o *Offer) Consistent() bool {
	if !o.Status.Valid() {
		return false
	}

	return (o.Reservation != nil) == (o.Status != OfferStatusAvailable)
}

// OfferListing is the public view of an offer. It never carries reservation or contact data.
type OfferListing struct {
	Key          string          `json:"key"`
	SellerID     uuid.UUID       `json:"seller_id"`
	SellerName   string          `json:"seller_name,omitempty"`
	MealType     MealType        `json:"meal_type"`
	Price        float64         `json:"price"`
	Details      string          `json:"details,omitempty"`
	Status       OfferStatus     `json:"status"`
	SellerRating RatingAggregate `json:"seller_rating"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Listing projects the offer onto its public view.
func (o *Offer) Listing() *OfferListing {
	return &OfferListing{
		Key:          o.Key,
		SellerID:     o.SellerID,
		SellerName:   o.SellerName,
		MealType:     o.MealType,
		Price:        o.Price,
		Details:      o.Details,
		Status:       o.Status,
		SellerRating: o.SellerRating,
		CreatedAt:    o.CreatedAt,
	}
}
