package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret
	cfg.SecretKey.AccessTTL = time.Hour

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	user := &entity.User{
		ID:       uuid.New(),
		Username: "corner_bakery",
		IsStaff:  true,
		Profile:  &entity.Profile{Type: entity.RoleBusiness},
	}

	tokenString, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := jwtService.ValidateToken(tokenString, testAccessSecret)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, user.Username, claims["username"])
	assert.Equal(t, "business", claims["role"])
	assert.Equal(t, true, claims["is_staff"])
}

func TestJWTService_ProfilelessUserHasNoRoleClaim(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Username: "orphan"}

	tokenString, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	token, err := jwtService.ValidateToken(tokenString, testAccessSecret)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	_, hasRole := claims["role"]
	assert.False(t, hasRole)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Username: "corner_bakery"}

	tokenString, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	token, err := jwtService.ValidateToken(tokenString, "some_other_secret")
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	token, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", testAccessSecret)
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
