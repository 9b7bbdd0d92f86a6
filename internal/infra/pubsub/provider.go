package pubsub

import (
	"context"
	"log/slog"

	"mealmarket/config"
	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/constants"
	"mealmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopBackplane keeps every event on this instance.
type noopBackplane struct{}

func (noopBackplane) Publish(context.Context, *service.RealtimeEvent) error { return nil }

func (noopBackplane) Subscribe(context.Context, service.RealtimeReceiver) error { return nil }

func (noopBackplane) Enabled() bool { return false }

func (noopBackplane) Close() error { return nil }

// BackplaneParams holds dependencies for the RealtimeBackplane, injected by Fx
type BackplaneParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBackplane creates a RealtimeBackplane based on configuration
func NewBackplane(params BackplaneParams) (service.RealtimeBackplane, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, realtime events stay on this instance")

		return noopBackplane{}, nil
	}

	var backplane service.RealtimeBackplane
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if len(cfg.PeerEndpoints) == 0 {
			return nil, errors.New("peer endpoints are required for local provider")
		}
		logger.Info("Using local HTTP backplane", slog.Any("peers", cfg.PeerEndpoints))

		backplane = NewLocalHTTPBackplane(cfg.PeerEndpoints, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		backplane, err = NewGoogleBackplane(params.Ctx, cfg.ProjectID, cfg.TopicID, cfg.SubscriptionID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing realtime backplane")

			return backplane.Close()
		},
	})

	return backplane, nil
}

// withEventLogger scopes the context to the request that produced event on the origin instance.
func withEventLogger(ctx context.Context, logger *slog.Logger, event *service.RealtimeEvent) context.Context {
	if event.RequestID == "" {
		return ctx
	}

	ctx = deliverycontext.WithRequestID(ctx, event.RequestID)

	return deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", event.RequestID)))
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBackplane),
)
