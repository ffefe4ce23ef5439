package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")

	access, err := j.GenerateAccessToken("cli")
	require.NoError(t, err)

	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "cli", got)
}

func TestJWT_EmptySubject(t *testing.T) {
	j := NewJWT("secret")

	_, err := j.GenerateAccessToken("")
	require.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	access, err := NewJWT("secret").GenerateAccessToken("cli")
	require.NoError(t, err)

	_, err = NewJWT("other").ParseAccessToken(access)
	require.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := issued
	j := NewJWT("secret", WithTTL(time.Minute), WithClock(func() time.Time { return clock }))

	access, err := j.GenerateAccessToken("cli")
	require.NoError(t, err)

	_, err = j.ParseAccessToken(access)
	require.NoError(t, err)

	clock = issued.Add(2 * time.Minute)
	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:  issuer,
		Subject: "cli",
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseAccessToken(unsigned)
	require.Error(t, err)
}

func TestJWT_WrongIssuer(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "cli",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseAccessToken(signed)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}
