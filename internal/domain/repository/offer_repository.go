// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for offer persistence.
var (
	// ErrOfferNotFound is returned when no offer matches the key.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrDuplicateOfferKey is returned when a generated key collides.
	ErrDuplicateOfferKey = errors.New("offer key already exists")
)

// OfferGuard is the row predicate of a conditional transition.
// Zero-valued SellerID and empty BuyerID match any row.
type OfferGuard struct {
	Status   entity.OfferStatus
	SellerID uuid.UUID
	BuyerID  string
}

// OfferMutation is the set of columns a transition writes.
type OfferMutation struct {
	Status entity.OfferStatus
	// Reservation replaces the reservation fields when non-nil.
	Reservation *entity.Reservation
	// ClearReservation nulls the reservation fields.
	ClearReservation bool
	ConfirmedAt      *time.Time
	RejectedAt       *time.Time
}

// Apply mirrors the mutation onto an in-memory offer.
func (m OfferMutation) Apply(offer *entity.Offer, now time.Time) {
	offer.Status = m.Status
	if m.Reservation != nil {
		reservation := *m.Reservation
		offer.Reservation = &reservation
	}
	if m.ClearReservation {
		offer.Reservation = nil
	}
	if m.ConfirmedAt != nil {
		offer.ConfirmedAt = m.ConfirmedAt
	}
	if m.RejectedAt != nil {
		offer.RejectedAt = m.RejectedAt
	}
	offer.UpdatedAt = now
}

// OfferRepository defines the interface for offer-related database operations.
type OfferRepository interface {
	// CreateOffer persists a new offer. Key, status and timestamps must already be set.
	CreateOffer(ctx context.Context, offer *entity.Offer) error

	// FindOfferByKey retrieves an offer with seller display data and rating aggregate.
	FindOfferByKey(ctx context.Context, key string) (*entity.Offer, error)

	// ListOffers retrieves offers in any of the given statuses, newest first.
	ListOffers(ctx context.Context, statuses []entity.OfferStatus) ([]*entity.Offer, error)

	// ListOffersBySeller retrieves every offer owned by a seller, newest first.
	ListOffersBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Offer, error)

	// ListReservationsBySeller retrieves a seller's reserved offers ordered by reservation time, newest first.
	ListReservationsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Offer, error)

	// Transition applies mutation only when the row matches guard, as a single conditional update.
	// It returns the number of rows affected (0 or 1).
	Transition(ctx context.Context, key string, guard OfferGuard, mutation OfferMutation) (int64, error)

	// DeleteAvailableOffer hard-deletes the offer only if it is available and owned by sellerID.
	// It returns the number of rows affected (0 or 1).
	DeleteAvailableOffer(ctx context.Context, key string, sellerID uuid.UUID) (int64, error)
}
