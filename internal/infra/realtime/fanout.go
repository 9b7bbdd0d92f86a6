package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"mealmarket/config"
	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/service"
	"mealmarket/internal/infra/metrics"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 3 * time.Second

// Fanout delivers events to this instance's hub and forwards them over the backplane.
type Fanout struct {
	hub            *Hub
	backplane      service.RealtimeBackplane
	instanceID     string
	publishTimeout time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

type FanoutParams struct {
	fx.In

	Lc        fx.Lifecycle
	Hub       *Hub
	Backplane service.RealtimeBackplane
	Config    *config.Config
	Logger    *slog.Logger
}

func NewFanout(params FanoutParams) *Fanout {
	fanout := newFanout(params.Hub, params.Backplane, params.Config, params.Logger)

	var cancel context.CancelFunc
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var subCtx context.Context
			subCtx, cancel = context.WithCancel(context.Background())

			return fanout.backplane.Subscribe(subCtx, fanout)
		},
		OnStop: func(context.Context) error {
			if cancel != nil {
				cancel()
			}
			fanout.hub.Close()

			return nil
		},
	})

	return fanout
}

func newFanout(hub *Hub, backplane service.RealtimeBackplane, cfg *config.Config, logger *slog.Logger) *Fanout {
	instanceID := cfg.Realtime.InstanceID
	if instanceID == "" {
		instanceID = uuid.NewString()
	}
	publishTimeout := cfg.Realtime.PublishTimeout
	if publishTimeout <= 0 {
		publishTimeout = defaultPublishTimeout
	}

	return &Fanout{
		hub:            hub,
		backplane:      backplane,
		instanceID:     instanceID,
		publishTimeout: publishTimeout,
		logger:         logger.With(slog.String("component", "realtime_fanout"), slog.String("instance_id", instanceID)),
		now:            time.Now,
	}
}

// InstanceID identifies this process on the backplane.
func (f *Fanout) InstanceID() string {
	return f.instanceID
}

func (f *Fanout) Publish(ctx context.Context, room, event string, payload any) {
	f.publish(ctx, room, event, payload)
}

func (f *Fanout) BroadcastAll(ctx context.Context, event string, payload any) {
	f.publish(ctx, "", event, payload)
}

// Receive delivers an event forwarded by another instance. Events this instance originated are dropped.
func (f *Fanout) Receive(ctx context.Context, event *service.RealtimeEvent) {
	if event == nil || event.Origin == f.instanceID {
		return
	}

	delivered := f.hub.Deliver(event.Room, event.Event, event.Payload)
	metrics.RealtimeEvents.WithLabelValues("remote", scope(event.Room)).Inc()

	deliverycontext.GetLoggerOrDefault(ctx, f.logger).Debug("Delivered forwarded realtime event",
		slog.String("event_id", event.ID),
		slog.String("origin", event.Origin),
		slog.String("event", event.Event),
		slog.Int("connections", delivered),
	)
}

func (f *Fanout) publish(ctx context.Context, room, event string, payload any) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, f.logger)

	delivered := f.hub.Deliver(room, event, payload)
	metrics.RealtimeEvents.WithLabelValues("local", scope(room)).Inc()
	logger.Debug("Published realtime event",
		slog.String("room", room),
		slog.String("event", event),
		slog.Int("connections", delivered),
	)

	if !f.backplane.Enabled() {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("Realtime payload is not serialisable, not forwarding",
			slog.String("event", event),
			slog.Any("error", err),
		)

		return
	}

	forwarded := &service.RealtimeEvent{
		ID:         uuid.NewString(),
		Origin:     f.instanceID,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Room:       room,
		Event:      event,
		Payload:    raw,
		OccurredAt: f.now().UTC(),
	}

	go f.forward(context.WithoutCancel(ctx), forwarded, logger)
}

func (f *Fanout) forward(ctx context.Context, event *service.RealtimeEvent, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, f.publishTimeout)
	defer cancel()

	if err := f.backplane.Publish(ctx, event); err != nil {
		metrics.BackplaneForwardFailures.Inc()
		logger.Warn("Failed to forward realtime event",
			slog.String("event_id", event.ID),
			slog.String("event", event.Event),
			slog.Any("error", err),
		)
	}
}

func scope(room string) string {
	if room == "" {
		return "broadcast"
	}

	return "room"
}
