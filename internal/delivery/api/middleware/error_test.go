package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealmarket/config"
	"mealmarket/internal/delivery/api/response"
	"mealmarket/internal/domain/constants"
	domainerrors "mealmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, env string, err error) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/offers", nil), rec)
	m.HandleHTTPError(err, c)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedErr  string
		hasDetails   bool
	}{
		{
			name:         "conflict keeps details",
			err:          domainerrors.ErrOfferNotAvailable.WithDetails("offer_k was reserved"),
			expectedCode: http.StatusConflict,
			expectedErr:  "OFFER_NOT_AVAILABLE",
			hasDetails:   true,
		},
		{
			name:         "wrapped app error",
			err:          errors.Wrap(domainerrors.ErrOfferNotFound, "reserve"),
			expectedCode: http.StatusNotFound,
			expectedErr:  "OFFER_NOT_FOUND",
		},
		{
			name:         "forbidden drops details",
			err:          domainerrors.ErrForbidden.WithDetails("requires role seller"),
			expectedCode: http.StatusForbidden,
			expectedErr:  "FORBIDDEN",
		},
		{
			name:         "unknown route",
			err:          echo.ErrNotFound,
			expectedCode: http.StatusNotFound,
			expectedErr:  "ROUTE_NOT_FOUND",
		},
		{
			name:         "unexpected error",
			err:          errors.New("connection reset"),
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, envelope := renderError(t, "production", tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.expectedErr, envelope.Error.Code)
			assert.Equal(t, tt.hasDetails, envelope.Error.Details != nil)
		})
	}
}

func TestErrorMiddleware_InternalDetailsOnlyInDevelop(t *testing.T) {
	err := errors.New("pq: relation offers does not exist")

	_, prod := renderError(t, "production", err)
	assert.NotContains(t, prod.Message, "pq:")
	assert.Nil(t, prod.Error.Details)

	_, dev := renderError(t, constants.EnvDevelop, err)
	assert.Equal(t, "pq: relation offers does not exist", dev.Error.Details)
}
