package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "mealmarket/internal/delivery/context"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "
	// accessTokenQuery carries the token on websocket upgrades, where browsers cannot set headers.
	accessTokenQuery = "access_token"
)

// AuthMiddleware authenticates sellers with access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid Bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
		}

		m.setSeller(c, claims)

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(deliverycontext.GetRoles(c), requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole)
			}

			return next(c)
		}
	}
}

// OptionalSeller resolves the seller behind an optional token in the Authorization header or
// access_token query parameter. It returns uuid.Nil without a token and an error for a bad one.
func (m *AuthMiddleware) OptionalSeller(c echo.Context) (uuid.UUID, error) {
	tokenString, _ := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
	if tokenString == "" {
		tokenString = c.QueryParam(accessTokenQuery)
	}
	if tokenString == "" {
		return uuid.Nil, nil
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
	}
	m.setSeller(c, claims)

	return claims.SellerID, nil
}

func (m *AuthMiddleware) setSeller(c echo.Context, claims *service.Claims) {
	deliverycontext.SetSeller(c, claims.SellerID, claims.Roles)

	req := c.Request()
	ctx := req.Context()
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("seller_id", claims.SellerID.String())))
		c.SetRequest(req.WithContext(ctx))
	}
}

// GetSellerID returns the authenticated seller or an Unauthenticated error.
func GetSellerID(c echo.Context) (uuid.UUID, error) {
	sellerID, ok := deliverycontext.GetSellerID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return sellerID, nil
}
