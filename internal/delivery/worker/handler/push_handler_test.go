package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mealmarket/config"
	"mealmarket/internal/domain/constants"
	"mealmarket/internal/domain/service"
	"mealmarket/internal/infra/pubsub"
	mockSvc "mealmarket/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockRealtimeReceiver) {
	receiver := mockSvc.NewMockRealtimeReceiver(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Receiver: receiver,
	})

	return h, receiver
}

func postPush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_ReplaysEvent(t *testing.T) {
	h, receiver := newTestPushHandler(t, &config.Config{})

	event := &service.RealtimeEvent{
		ID:         "evt-1",
		Origin:     "instance-b",
		RequestID:  "req-42",
		Room:       "seller_7",
		Event:      service.EventNewReservation,
		Payload:    json.RawMessage(`{"offer_key":"offer_k"}`),
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	msg, err := pubsub.NewPushMessage(event, "local", event.OccurredAt)
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	receiver.EXPECT().
		Receive(mock.Anything, mock.MatchedBy(func(got *service.RealtimeEvent) bool {
			return got.Origin == "instance-b" && got.Room == "seller_7" && got.RequestID == "req-42"
		})).
		Run(func(ctx context.Context, _ *service.RealtimeEvent) {
			assert.NotNil(t, ctx)
		}).
		Return()

	rec := postPush(t, h, string(body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "event without origin", body: `{"message":{"data":"eyJldmVudCI6Im5ld19vZmZlciJ9"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.Config{})

			rec := postPush(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"
	h, _ := newTestPushHandler(t, cfg)
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := postPush(t, h, `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
