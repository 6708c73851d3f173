package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventku_backend/internals/configs"
	userModel "eventku_backend/internals/features/users/user/model"
)

func TestGenerateAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	u := userModel.UserModel{
		UserID:      uuid.New(),
		UserName:    "Siti",
		UserEmail:   "siti@example.com",
		UserIsAdmin: true,
	}

	signed, err := GenerateAccessToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.Equal(t, u.UserID.String(), claims["user_id"])
	assert.Equal(t, u.UserID.String(), claims["sub"])
	assert.Equal(t, true, claims["is_admin"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 24*time.Hour.Seconds(), exp-iat, 1)
}

func TestGenerateAccessToken_MissingSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = prev }()

	_, err := GenerateAccessToken(userModel.UserModel{UserID: uuid.New()})
	require.Error(t, err)
}
