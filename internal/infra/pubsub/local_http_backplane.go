package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const localSubscription = "projects/local/subscriptions/realtime"

// localHTTPBackplane forwards events by POSTing push messages to every peer's
// worker endpoint, the way a Pub/Sub push subscription would.
type localHTTPBackplane struct {
	peers      []string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPBackplane creates a backplane that pushes to a fixed list of peers.
func NewLocalHTTPBackplane(peers []string, logger *slog.Logger) service.RealtimeBackplane {
	return &localHTTPBackplane{
		peers: peers,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

func (b *localHTTPBackplane) Publish(ctx context.Context, event *service.RealtimeEvent) error {
	msg, err := NewPushMessage(event, localSubscription, b.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	var errs error
	for _, peer := range b.peers {
		if err := b.push(ctx, peer, body, event.RequestID); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "push to %s", peer))
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, b.logger).Debug("[LocalPubSub] Event forwarded",
		slog.String("event_id", event.ID),
		slog.Int("peers", len(b.peers)),
		slog.Int("failed", len(multierr.Errors(errs))),
	)

	return errs
}

func (b *localHTTPBackplane) push(ctx context.Context, endpoint string, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("peer returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Subscribe is a no-op: peers deliver to this instance's push endpoint.
func (b *localHTTPBackplane) Subscribe(context.Context, service.RealtimeReceiver) error {
	return nil
}

func (b *localHTTPBackplane) Enabled() bool {
	return len(b.peers) > 0
}

func (b *localHTTPBackplane) Close() error {
	b.httpClient.CloseIdleConnections()

	return nil
}
