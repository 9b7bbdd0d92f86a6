package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoleSeller is the token role required for seller endpoints.
const RoleSeller = "seller"

// Seller is the offer owner. Credentials live with the external auth provider.
type Seller struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PhoneVerified bool      `json:"phone_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CanPublishOffers reports whether the seller has a verified contact channel.
func (s *Seller) CanPublishOffers() bool {
	return s.Phone != "" && s.PhoneVerified
}
