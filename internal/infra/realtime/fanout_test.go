package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mealmarket/config"
	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/service"
	mockSvc "mealmarket/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestFanout(t *testing.T, hub *Hub, backplane service.RealtimeBackplane) *Fanout {
	t.Helper()

	cfg := &config.Config{}
	cfg.Realtime.InstanceID = "node-a"
	fanout := newFanout(hub, backplane, cfg, discardLogger())
	fanout.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	return fanout
}

func TestFanout_PublishDeliversLocallyThenForwards(t *testing.T) {
	hub, server := newTestHub(t, 8)
	backplane := mockSvc.NewMockRealtimeBackplane(t)
	fanout := newTestFanout(t, hub, backplane)

	conn := dial(t, server, "")
	send(t, conn, map[string]string{"action": ActionJoinBuyer, "id": "buyer_anna"})

	forwarded := make(chan *service.RealtimeEvent, 1)
	backplane.EXPECT().Enabled().Return(true)
	backplane.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.RealtimeEvent) { forwarded <- event }).
		Return(nil)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	fanout.Publish(ctx, "buyer_anna", service.EventReservationConfirmed, map[string]any{"seller_phone": "0501234567"})

	message := read(t, conn)
	assert.Equal(t, service.EventReservationConfirmed, message.Event)
	assert.Equal(t, "buyer_anna", message.Room)

	select {
	case event := <-forwarded:
		assert.Equal(t, "node-a", event.Origin)
		assert.Equal(t, "req-1", event.RequestID)
		assert.Equal(t, "buyer_anna", event.Room)
		assert.NotEmpty(t, event.ID)
		assert.JSONEq(t, `{"seller_phone":"0501234567"}`, string(event.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("event was not forwarded")
	}
}

func TestFanout_ForwardFailureIsSwallowed(t *testing.T) {
	hub, _ := newTestHub(t, 8)
	backplane := mockSvc.NewMockRealtimeBackplane(t)
	fanout := newTestFanout(t, hub, backplane)

	done := make(chan struct{})
	backplane.EXPECT().Enabled().Return(true)
	backplane.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.RealtimeEvent) { close(done) }).
		Return(errors.New("topic unavailable"))

	fanout.BroadcastAll(context.Background(), service.EventOfferRemoved, map[string]string{"key": "offer_1"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not forwarded")
	}
}

func TestFanout_DisabledBackplaneOnlyDeliversLocally(t *testing.T) {
	hub, _ := newTestHub(t, 8)
	backplane := mockSvc.NewMockRealtimeBackplane(t)
	fanout := newTestFanout(t, hub, backplane)

	backplane.EXPECT().Enabled().Return(false)

	fanout.Publish(context.Background(), "seller_x", service.EventNewRating, nil)
}

func TestFanout_ReceiveDropsOwnEvents(t *testing.T) {
	hub, server := newTestHub(t, 8)
	fanout := newTestFanout(t, hub, mockSvc.NewMockRealtimeBackplane(t))

	conn := dial(t, server, "")
	send(t, conn, map[string]string{"action": ActionPing})

	fanout.Receive(context.Background(), &service.RealtimeEvent{
		ID:      "evt-own",
		Origin:  "node-a",
		Event:   service.EventNewOffer,
		Payload: json.RawMessage(`{"key":"offer_own"}`),
	})
	fanout.Receive(context.Background(), &service.RealtimeEvent{
		ID:      "evt-peer",
		Origin:  "node-b",
		Event:   service.EventNewOffer,
		Payload: json.RawMessage(`{"key":"offer_peer"}`),
	})

	// only the peer event arrives
	message := read(t, conn)
	assert.Equal(t, service.EventNewOffer, message.Event)
	assert.Equal(t, map[string]any{"key": "offer_peer"}, message.Data)
}

func TestNewFanout_LifecycleSubscribes(t *testing.T) {
	hub, _ := newTestHub(t, 8)
	backplane := mockSvc.NewMockRealtimeBackplane(t)
	lc := fxtest.NewLifecycle(t)

	cfg := &config.Config{}
	fanout := NewFanout(FanoutParams{Lc: lc, Hub: hub, Backplane: backplane, Config: cfg, Logger: discardLogger()})
	require.NotEmpty(t, fanout.InstanceID())

	backplane.EXPECT().Subscribe(mock.Anything, fanout).Return(nil)

	lc.RequireStart()
	lc.RequireStop()
}
