package auth

import (
	"testing"
	"time"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	sellerID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(sellerID, []string{entity.RoleSeller})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)

	require.NoError(t, err)
	assert.Equal(t, sellerID, claims.SellerID)
	assert.Equal(t, []string{entity.RoleSeller}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RefreshTokenIsNotAnAccessToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, refreshToken, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	// Signed with the refresh secret, so the signature check already fails.
	claims, err := svc.ValidateAccessToken(refreshToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	concrete := svc.(*jwtService)
	concrete.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	accessToken, _, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)
	concrete.now = time.Now

	_, err = svc.ValidateAccessToken(accessToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
