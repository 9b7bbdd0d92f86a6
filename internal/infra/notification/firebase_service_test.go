package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"mealmarket/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPushService_WithoutCredentialsIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewPushService(PushParams{Ctx: context.Background(), Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)

	sent, failed, invalid, err := svc.SendBatch(context.Background(), []string{"a", "b"}, "title", "body", nil)

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, failed)
	assert.Empty(t, invalid)
}

func TestFirebaseService_SendBatch_RejectsOversizedBatch(t *testing.T) {
	svc := &firebaseService{}
	tokens := make([]string, MaxMulticastTokens+1)

	_, _, _, err := svc.SendBatch(context.Background(), tokens, "title", "body", nil)

	assert.ErrorContains(t, err, "token count exceeds limit")
}

func TestFirebaseService_SendBatch_EmptyIsNoop(t *testing.T) {
	svc := &firebaseService{}

	sent, failed, invalid, err := svc.SendBatch(context.Background(), nil, "title", "body", nil)

	require.NoError(t, err)
	assert.Zero(t, sent+failed)
	assert.Nil(t, invalid)
}

func TestRejectedTokens_IgnoresSuccessesAndTransientErrors(t *testing.T) {
	tokens := []string{"ok", "transient"}
	responses := []*messaging.SendResponse{
		{Success: true, MessageID: "m1"},
		{Error: errors.New("deadline exceeded")},
	}

	assert.Empty(t, rejectedTokens(tokens, responses))
}
