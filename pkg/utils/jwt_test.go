package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, "medrep-crm")

	token, err := m.GenerateAccessToken("64f0c2", "Asha", "asha@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c2", claims.UserID)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "medrep-crm", claims.Issuer)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, "medrep-crm")

	expired, err := NewJWTManager("secret", -time.Minute, "medrep-crm").GenerateAccessToken("u1", "", "")
	require.NoError(t, err)

	foreign, err := NewJWTManager("other", time.Hour, "medrep-crm").GenerateAccessToken("u1", "", "")
	require.NoError(t, err)

	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", foreign},
		{"garbage", "not.a.token"},
		{"no user", anonymous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateAccessToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTManager_SubjectFallback(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, "medrep-crm")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   "legacy-user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "legacy-user", claims.UserID)
}
