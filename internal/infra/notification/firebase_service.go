// Package notification delivers push messages to seller devices.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"mealmarket/config"
	"mealmarket/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the Firebase limit for one multicast request.
const MaxMulticastTokens = 500

// PushParams holds dependencies for the push service, injected by Fx.
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService returns the Firebase sender when credentials are configured and a
// logging no-op otherwise, so local runs need no Firebase project.
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase credentials not configured, seller push disabled")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatch sends one multicast message (max 500 tokens) and reports tokens Firebase no longer accepts.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > MaxMulticastTokens {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	return response.SuccessCount, response.FailureCount, rejectedTokens(tokens, response.Responses), nil
}

// rejectedTokens pairs per-token responses with their tokens and keeps the ones
// that are malformed or unregistered.
func rejectedTokens(tokens []string, responses []*messaging.SendResponse) []string {
	invalid := make([]string, 0)
	for idx, sendResponse := range responses {
		if idx >= len(tokens) || sendResponse == nil || sendResponse.Error == nil {
			continue
		}

		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalid = append(invalid, tokens[idx])
		}
	}

	return invalid
}

type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendBatch(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.Debug("Push skipped", slog.Int("tokens", len(tokens)), slog.String("title", title))

	return 0, 0, nil, nil
}
