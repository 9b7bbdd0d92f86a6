package repository

import (
	"context"
	"errors"

	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is returned when a seller is not found.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository reads the seller directory maintained by the auth provider.
type SellerRepository interface {
	// FindSellerByID retrieves a seller by its stable identity.
	FindSellerByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// UpsertSeller inserts or refreshes a seller record.
	UpsertSeller(ctx context.Context, seller *entity.Seller) error
}
