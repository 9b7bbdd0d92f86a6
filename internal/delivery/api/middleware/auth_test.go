package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/service"
	mockSvc "mealmarket/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target, authorization string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	sellerID := uuid.New()

	tests := []struct {
		name          string
		authorization string
		setup         func(tokenSvc *mockSvc.MockTokenService)
		expectedErr   error
	}{
		{
			name:          "valid token",
			authorization: "Bearer good",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{SellerID: sellerID, Roles: []string{entity.RoleSeller}}, nil)
			},
		},
		{
			name:        "missing header",
			expectedErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:          "not a bearer token",
			authorization: "Basic abc",
			expectedErr:   domainerrors.ErrUnauthenticated,
		},
		{
			name:          "expired token",
			authorization: "Bearer stale",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("stale").Return(nil, errors.New("token is expired"))
			},
			expectedErr: domainerrors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			c := newContext("/offers", tt.authorization)

			err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				return
			}
			require.NoError(t, err)
			got, ok := deliverycontext.GetSellerID(c)
			require.True(t, ok)
			assert.Equal(t, sellerID, got)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := newContext("/offers", "")
	deliverycontext.SetSeller(c, uuid.New(), []string{"viewer"})
	assert.ErrorIs(t, m.RequireRole(entity.RoleSeller)(okHandler)(c), domainerrors.ErrForbidden)

	c = newContext("/offers", "")
	deliverycontext.SetSeller(c, uuid.New(), []string{entity.RoleSeller})
	assert.NoError(t, m.RequireRole(entity.RoleSeller)(okHandler)(c))
}

func TestAuthMiddleware_OptionalSeller(t *testing.T) {
	sellerID := uuid.New()

	t.Run("anonymous", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

		got, err := m.OptionalSeller(newContext("/ws", ""))

		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, got)
	})

	t.Run("token in query", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("ws-token").Return(&service.Claims{SellerID: sellerID}, nil)

		got, err := NewAuthMiddleware(tokenSvc).OptionalSeller(newContext("/ws?access_token=ws-token", ""))

		require.NoError(t, err)
		assert.Equal(t, sellerID, got)
	})

	t.Run("bad token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("signature is invalid"))

		_, err := NewAuthMiddleware(tokenSvc).OptionalSeller(newContext("/ws", "Bearer bad"))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
