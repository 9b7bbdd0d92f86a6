package realtime

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mealmarket/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHub(t *testing.T, sendBuffer int) (*Hub, *httptest.Server) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Realtime.SendBuffer = sendBuffer
	hub := NewHub(HubParams{Config: cfg, Logger: discardLogger()})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sellerID, _ := uuid.Parse(r.URL.Query().Get("seller"))
		_ = hub.Serve(w, r, sellerID)
	}))
	t.Cleanup(func() {
		hub.Close()
		server.Close()
	})

	return hub, server
}

func dial(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, frame map[string]string) Message {
	t.Helper()

	require.NoError(t, conn.WriteJSON(frame))

	return read(t, conn)
}

func read(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var message Message
	require.NoError(t, conn.ReadJSON(&message))

	return message
}

func TestHub_JoinBuyerAndDeliver(t *testing.T) {
	hub, server := newTestHub(t, 8)
	conn := dial(t, server, "")

	ack := send(t, conn, map[string]string{"action": ActionJoinBuyer, "id": "buyer_anna"})
	require.Equal(t, EventJoined, ack.Event)
	assert.Equal(t, map[string]any{"room": "buyer_anna"}, ack.Data)

	// joining twice is a no-op
	ack = send(t, conn, map[string]string{"action": ActionJoinBuyer, "id": "buyer_anna"})
	require.Equal(t, EventJoined, ack.Event)
	assert.Equal(t, 1, hub.RoomSize("buyer_anna"))

	delivered := hub.Deliver("buyer_anna", "reservation_confirmed", map[string]string{"offer_key": "offer_1"})
	assert.Equal(t, 1, delivered)

	message := read(t, conn)
	assert.Equal(t, "buyer_anna", message.Room)
	assert.Equal(t, "reservation_confirmed", message.Event)
	assert.Equal(t, map[string]any{"offer_key": "offer_1"}, message.Data)
}

func TestHub_JoinSellerRequiresMatchingToken(t *testing.T) {
	_, server := newTestHub(t, 8)
	sellerID := uuid.New()

	anonymous := dial(t, server, "")
	ack := send(t, anonymous, map[string]string{"action": ActionJoinSeller, "id": sellerID.String()})
	assert.Equal(t, EventError, ack.Event)

	other := dial(t, server, "?seller="+uuid.NewString())
	ack = send(t, other, map[string]string{"action": ActionJoinSeller, "id": sellerID.String()})
	assert.Equal(t, EventError, ack.Event)

	owner := dial(t, server, "?seller="+sellerID.String())
	ack = send(t, owner, map[string]string{"action": ActionJoinSeller, "id": sellerID.String()})
	require.Equal(t, EventJoined, ack.Event)
	assert.Equal(t, map[string]any{"room": "seller_" + sellerID.String()}, ack.Data)
}

func TestHub_ControlFrames(t *testing.T) {
	tests := []struct {
		name  string
		frame map[string]string
		event string
	}{
		{name: "ping", frame: map[string]string{"action": "PING"}, event: EventPong},
		{name: "buyer id without prefix", frame: map[string]string{"action": ActionJoinBuyer, "id": "anna"}, event: EventError},
		{name: "bare buyer prefix", frame: map[string]string{"action": ActionJoinBuyer, "id": "buyer_"}, event: EventError},
		{name: "leave unknown room", frame: map[string]string{"action": ActionLeave, "room": "buyer_x"}, event: EventError},
		{name: "unsupported action", frame: map[string]string{"action": "subscribe"}, event: EventError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, server := newTestHub(t, 8)
			conn := dial(t, server, "")

			assert.Equal(t, tt.event, send(t, conn, tt.frame).Event)
		})
	}
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	hub, server := newTestHub(t, 8)
	conn := dial(t, server, "")

	send(t, conn, map[string]string{"action": ActionJoinBuyer, "id": "buyer_anna"})
	ack := send(t, conn, map[string]string{"action": ActionLeave, "room": "buyer_anna"})
	require.Equal(t, EventLeft, ack.Event)

	assert.Equal(t, 0, hub.Deliver("buyer_anna", "reservation_rejected", nil))
	assert.Equal(t, 0, hub.RoomSize("buyer_anna"))
}

func TestHub_BroadcastReachesEveryConnection(t *testing.T) {
	hub, server := newTestHub(t, 8)
	first := dial(t, server, "")
	second := dial(t, server, "")

	// a round trip guarantees both connections are registered
	send(t, first, map[string]string{"action": ActionPing})
	send(t, second, map[string]string{"action": ActionPing})

	assert.Equal(t, 2, hub.Deliver("", "offer_removed", map[string]string{"key": "offer_1"}))

	for _, conn := range []*websocket.Conn{first, second} {
		message := read(t, conn)
		assert.Empty(t, message.Room)
		assert.Equal(t, "offer_removed", message.Event)
	}
}

func TestHub_SlowConsumerIsDisconnected(t *testing.T) {
	hub, server := newTestHub(t, 1)
	conn := dial(t, server, "")
	send(t, conn, map[string]string{"action": ActionJoinBuyer, "id": "buyer_slow"})

	// the client never reads, so socket and send buffer fill and the hub drops it
	payload := strings.Repeat("x", 256<<10)
	assert.Eventually(t, func() bool {
		for range 8 {
			hub.Deliver("buyer_slow", "new_offer", payload)
		}

		return hub.Connections() == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		host    string
		allowed []string
		want    bool
	}{
		{name: "no origin header", host: "api.example.com", want: true},
		{name: "same host", origin: "https://api.example.com", host: "api.example.com:443", want: true},
		{name: "loopback", origin: "http://localhost:3000", host: "api.example.com", want: true},
		{name: "listed origin", origin: "https://app.example.com", host: "api.example.com", allowed: []string{"https://app.example.com"}, want: true},
		{name: "wildcard", origin: "https://evil.example.net", host: "api.example.com", allowed: []string{"*"}, want: true},
		{name: "foreign origin", origin: "https://evil.example.net", host: "api.example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			req.Host = tt.host
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, originAllowed(req, tt.allowed))
		})
	}
}
