package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestSeller(t *testing.T) {
	c := newEchoContext()

	_, ok := GetSellerID(c)
	assert.False(t, ok)
	assert.Empty(t, GetRoles(c))

	sellerID := uuid.New()
	SetSeller(c, sellerID, []string{"seller"})

	got, ok := GetSellerID(c)
	assert.True(t, ok)
	assert.Equal(t, sellerID, got)
	assert.Equal(t, []string{"seller"}, GetRoles(c))

	SetSeller(c, uuid.Nil, nil)
	_, ok = GetSellerID(c)
	assert.False(t, ok)
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Equal(t, "r-1", GetRequestIDFromContext(WithRequestID(context.Background(), "r-1")))
	assert.Empty(t, GetRequestID(newEchoContext()))
}
