package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"mealmarket/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attributes set on every forwarded event.
const (
	AttrEvent     = "event"
	AttrOrigin    = "origin"
	AttrRequestID = "request_id"
)

// PushMessage is the body Pub/Sub push subscriptions POST to an HTTP endpoint.
// The local provider sends the same shape so one receiver serves both.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an event in the push envelope.
func NewPushMessage(event *service.RealtimeEvent, subscription string, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.ID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg, nil
}

// Event decodes the wrapped realtime event.
func (m *PushMessage) Event() (*service.RealtimeEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	event, err := decodeEvent(data)
	if err != nil {
		return nil, err
	}
	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes[AttrRequestID]
	}

	return event, nil
}

func decodeEvent(data []byte) (*service.RealtimeEvent, error) {
	var event service.RealtimeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode realtime event")
	}
	if event.Event == "" || event.Origin == "" {
		return nil, errors.New("realtime event is missing name or origin")
	}

	return &event, nil
}

func eventAttributes(event *service.RealtimeEvent) map[string]string {
	attributes := map[string]string{
		AttrEvent:  event.Event,
		AttrOrigin: event.Origin,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
