package service

import (
	"context"
	"encoding/json"
	"time"
)

// Realtime event names pushed to clients.
const (
	EventNewReservation       = "new_reservation"
	EventReservationConfirmed = "reservation_confirmed"
	EventReservationRejected  = "reservation_rejected"
	EventNewOffer             = "new_offer"
	EventOfferRemoved         = "offer_removed"
	EventNewRating            = "new_rating"
)

// RealtimePublisher pushes events to connected clients. Delivery is best effort:
// both methods return immediately and never report failure to the caller.
type RealtimePublisher interface {
	// Publish delivers an event to every connection joined to room.
	Publish(ctx context.Context, room, event string, payload any)

	// BroadcastAll delivers an event to every connection.
	BroadcastAll(ctx context.Context, event string, payload any)
}

// RealtimeEvent is the unit forwarded between instances. An empty Room means broadcast.
type RealtimeEvent struct {
	ID         string          `json:"id"`
	Origin     string          `json:"origin"`
	RequestID  string          `json:"request_id,omitempty"`
	Room       string          `json:"room,omitempty"`
	Event      string          `json:"event"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// RealtimeReceiver accepts events forwarded from other instances.
type RealtimeReceiver interface {
	Receive(ctx context.Context, event *RealtimeEvent)
}

// RealtimeBackplane forwards realtime events between service instances.
type RealtimeBackplane interface {
	// Publish forwards an event to the other instances.
	Publish(ctx context.Context, event *RealtimeEvent) error

	// Subscribe delivers forwarded events to receiver until ctx is done.
	// Providers whose events arrive over HTTP push return immediately.
	Subscribe(ctx context.Context, receiver RealtimeReceiver) error

	// Enabled reports whether events leave this instance at all.
	Enabled() bool

	// Close releases any resources held by the backplane
	Close() error
}
