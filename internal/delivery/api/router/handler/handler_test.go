package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"mealmarket/config"
	"mealmarket/internal/delivery/api/middleware"
	"mealmarket/internal/delivery/api/response"
	"mealmarket/internal/delivery/api/validator"
	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the production error handling and validation.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger(), &config.Config{}).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// asSeller stands in for the auth middleware.
func asSeller(sellerID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetSeller(c, sellerID, []string{entity.RoleSeller})

			return next(c)
		}
	}
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// decodeEnvelope decodes the body, leaving Data as raw JSON for the caller.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (response.Envelope, json.RawMessage) {
	t.Helper()

	var raw struct {
		response.Envelope
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw), rec.Body.String())

	return raw.Envelope, raw.Data
}
