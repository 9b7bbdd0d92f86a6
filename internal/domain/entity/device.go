package entity

import (
	"time"

	"github.com/google/uuid"
)

// SellerDevice represents a seller's device registered for push notifications.
type SellerDevice struct {
	ID        uuid.UUID `json:"id"`
	SellerID  uuid.UUID `json:"seller_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
