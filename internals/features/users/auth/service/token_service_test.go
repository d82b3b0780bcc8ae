package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zarfuel_backend/internals/configs"
	profileModel "zarfuel_backend/internals/features/users/profiles/model"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, VerifyPassword(hashed, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hashed, "wrong password"))
}

func TestCreateAccessTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	profile := profileModel.ProfileModel{
		ProfileID:        uuid.New(),
		ProfileFirstName: "Ana",
		ProfileLastName:  "Pratama",
		ProfileEmail:     "ana@example.com",
		ProfileRole:      "special",
	}

	signed, expiresAt, err := CreateAccessToken(profile)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(AccessTTL()), expiresAt, time.Minute)

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	assert.Equal(t, profile.ProfileID.String(), claims["user_id"])
	assert.Equal(t, "special", claims["role"])
	assert.Equal(t, "Ana Pratama", claims["full_name"])
	assert.Equal(t, "ana@example.com", claims["email"])
}

func TestCreateAccessTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, _, err := CreateAccessToken(profileModel.ProfileModel{ProfileID: uuid.New()})
	assert.Error(t, err)
}

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	configs.JWTSecret = "test-secret"

	signed, expiresAt, err := CreateAccessToken(profileModel.ProfileModel{ProfileID: uuid.New()})
	require.NoError(t, err)

	assert.WithinDuration(t, expiresAt, TokenExpiry(signed), time.Second)
}

func TestTokenExpiryFallsBackOnGarbage(t *testing.T) {
	got := TokenExpiry("not-a-token")
	assert.WithinDuration(t, time.Now().Add(AccessTTL()), got, time.Minute)
}
