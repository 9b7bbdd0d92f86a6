package usecase

import (
	"context"
	"time"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOfferInput carries the seller-supplied fields of a new offer
type CreateOfferInput struct {
	MealType entity.MealType `json:"meal_type"`
	Price    float64         `json:"price"`
	Details  string          `json:"details"`
}

// ReserveOfferInput carries the buyer's contact data. BuyerID is optional and
// lets a returning buyer keep one identity across reservations.
type ReserveOfferInput struct {
	BuyerID    string `json:"buyer_id"`
	BuyerName  string `json:"buyer_name"`
	BuyerPhone string `json:"buyer_phone"`
}

// ReservationReceipt is returned to the buyer after a successful reservation
type ReservationReceipt struct {
	OfferKey   string             `json:"offer_key"`
	BuyerID    string             `json:"buyer_id"`
	Status     entity.OfferStatus `json:"status"`
	ReservedAt time.Time          `json:"reserved_at"`
}

// OfferUsecase is the reservation coordinator: every offer state change goes through it
type OfferUsecase interface {
	// CreateOffer publishes a new available offer for a seller with a verified phone
	CreateOffer(ctx context.Context, sellerID uuid.UUID, input *CreateOfferInput) (*entity.Offer, error)

	// GetOffer retrieves a single offer
	GetOffer(ctx context.Context, key string) (*entity.Offer, error)

	// ListActiveOffers lists every offer with its seller rating, newest first
	ListActiveOffers(ctx context.Context) ([]*entity.Offer, error)

	// ListSellerOffers lists the offers owned by a seller
	ListSellerOffers(ctx context.Context, sellerID uuid.UUID) ([]*entity.Offer, error)

	// ListReservations lists a seller's offers awaiting confirmation
	ListReservations(ctx context.Context, sellerID uuid.UUID) ([]*entity.Offer, error)

	// ReserveOffer claims an available offer for a buyer
	ReserveOffer(ctx context.Context, key string, input *ReserveOfferInput) (*ReservationReceipt, error)

	// ConfirmReservation marks a reserved offer sold
	ConfirmReservation(ctx context.Context, key string, sellerID uuid.UUID) (*entity.Offer, error)

	// RejectReservation returns a reserved offer to available
	RejectReservation(ctx context.Context, key string, sellerID uuid.UUID) (*entity.Offer, error)

	// RemoveOffer deletes an available offer
	RemoveOffer(ctx context.Context, key string, sellerID uuid.UUID) error

	// GenerateOfferQR renders the share QR code of an existing offer
	GenerateOfferQR(ctx context.Context, key string) ([]byte, error)
}
