package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecipientType says which side of a trade a notification addresses.
type RecipientType string

const (
	RecipientSeller RecipientType = "seller"
	RecipientBuyer  RecipientType = "buyer"
)

// NotificationType is tied to the transition that produced the notification.
type NotificationType string

const (
	NotificationNewReservation       NotificationType = "new_reservation"
	NotificationReservationConfirmed NotificationType = "reservation_confirmed"
	NotificationReservationRejected  NotificationType = "reservation_rejected"
	NotificationNewRating            NotificationType = "new_rating"
)

// Recipient identifies the addressee of a notification.
type Recipient struct {
	Type RecipientType `json:"type"`
	ID   string        `json:"id"`
}

// SellerRecipient addresses a seller.
func SellerRecipient(sellerID uuid.UUID) Recipient {
	return Recipient{Type: RecipientSeller, ID: sellerID.String()}
}

// BuyerRecipient addresses a buyer.
func BuyerRecipient(buyerID string) Recipient {
	return Recipient{Type: RecipientBuyer, ID: buyerID}
}

// Room is the realtime room name for this recipient, e.g. seller_{id}.
// Buyer ids already carry the buyer_ prefix, so a buyer's room is the id itself.
func (r Recipient) Room() string {
	prefix := string(r.Type) + "_"
	if strings.HasPrefix(r.ID, prefix) {
		return r.ID
	}

	return prefix + r.ID
}

// Notification is a durable record of one state change.
type Notification struct {
	ID            uuid.UUID        `json:"id"`
	Type          NotificationType `json:"type"`
	RecipientType RecipientType    `json:"recipient_type"`
	RecipientID   string           `json:"recipient_id"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Payload       map[string]any   `json:"payload"`
	IsRead        bool             `json:"is_read"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Recipient returns the addressee.
func (n *Notification) Recipient() Recipient {
	return Recipient{Type: n.RecipientType, ID: n.RecipientID}
}

// NotificationPage is one newest-first page of a recipient's notifications.
type NotificationPage struct {
	Items       []*Notification `json:"items"`
	UnreadCount int64           `json:"unread_count"`
	Limit       int             `json:"limit"`
	Offset      int             `json:"offset"`
	HasMore     bool            `json:"has_more"`
}

// NotificationStats summarises a recipient's inbox.
type NotificationStats struct {
	Total  int64                      `json:"total"`
	Unread int64                      `json:"unread"`
	ByType map[NotificationType]int64 `json:"by_type"`
}
