package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleBackplane forwards events through a Google Cloud Pub/Sub topic.
// With a subscription ID it pulls; otherwise a push subscription delivers to the worker endpoint.
type googleBackplane struct {
	client     *pubsub.Client
	publisher  *pubsub.Publisher
	subscriber *pubsub.Subscriber
	logger     *slog.Logger
}

// NewGoogleBackplane connects to projectID and verifies that topicID exists.
func NewGoogleBackplane(ctx context.Context, projectID, topicID, subscriptionID string, logger *slog.Logger) (service.RealtimeBackplane, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	backplane := &googleBackplane{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}
	if subscriptionID != "" {
		backplane.subscriber = client.Subscriber(subscriptionID)
	}

	logger.Info("Google Pub/Sub backplane initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
		slog.Bool("pull", subscriptionID != ""),
	)

	return backplane, nil
}

func (b *googleBackplane) Publish(ctx context.Context, event *service.RealtimeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := b.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, b.logger).Debug("[GooglePubSub] Event published",
		slog.String("event_id", event.ID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Subscribe starts pulling in the background until ctx is done.
func (b *googleBackplane) Subscribe(ctx context.Context, receiver service.RealtimeReceiver) error {
	if b.subscriber == nil {
		return nil
	}

	go func() {
		err := b.subscriber.Receive(ctx, func(msgCtx context.Context, msg *pubsub.Message) {
			// Redelivery would only repeat a broken payload, so every message is acked.
			defer msg.Ack()

			event, err := decodeEvent(msg.Data)
			if err != nil {
				b.logger.Warn("[GooglePubSub] Dropping malformed event",
					slog.String("message_id", msg.ID),
					slog.Any("error", err),
				)

				return
			}
			if event.RequestID == "" {
				event.RequestID = msg.Attributes[AttrRequestID]
			}

			receiver.Receive(withEventLogger(msgCtx, b.logger, event), event)
		})
		if err != nil && ctx.Err() == nil {
			b.logger.Error("[GooglePubSub] Receive stopped", slog.Any("error", err))
		}
	}()

	return nil
}

func (b *googleBackplane) Enabled() bool {
	return true
}

func (b *googleBackplane) Close() error {
	if b.publisher != nil {
		b.publisher.Stop()
	}
	if b.client != nil {
		return errors.WithStack(b.client.Close())
	}

	return nil
}
