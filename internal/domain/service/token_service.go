package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	SellerID uuid.UUID `json:"-"`
	Roles    []string  `json:"roles,omitempty"`
	Type     string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates seller access tokens. Sign-in itself is handled by the external auth provider.
type TokenService interface {
	// GenerateTokens creates an access token and a refresh token for a seller.
	GenerateTokens(sellerID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken parses an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
