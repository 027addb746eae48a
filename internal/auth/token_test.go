package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager("super-secret", 30)

	token, expiresAt, err := tm.GenerateToken("a@test.com")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	subject, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "a@test.com", subject)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := &TokenManager{secret: []byte("super-secret"), ttl: -time.Minute}

	token, _, err := tm.GenerateToken("a@test.com")
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("right-secret", 30).GenerateToken("a@test.com")
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", 30).ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("super-secret", 30)

	_, err := tm.ParseToken("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MissingSubject(t *testing.T) {
	tm := NewTokenManager("super-secret", 30)

	token, _, err := tm.GenerateToken("")
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MissingExpiration(t *testing.T) {
	tm := NewTokenManager("super-secret", 30)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "a@test.com"})
	token, err := raw.SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_UnexpectedSigningMethod(t *testing.T) {
	tm := NewTokenManager("super-secret", 30)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "a@test.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
