package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "akademik"})
}

func TestJWT_RoundTrip(t *testing.T) {
	s := newTestService()

	token, expiresIn, err := s.GenerateAccessToken("admin", RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 3600, expiresIn)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestJWT_Expired(t *testing.T) {
	s := newTestService()
	token, _, err := s.GenerateAccessToken("admin", RoleAdmin)
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = s.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrExpiredToken))
}

func TestJWT_WrongSecretOrIssuer(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken("admin", RoleAdmin)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "akademik"})
	_, err = other.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	otherIssuer := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "elsewhere"})
	_, err = otherIssuer.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = other.ValidateToken("")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, h := range []string{"", "abc.def", "Bearer ", "Basic abc"} {
		_, err := ExtractBearerToken(h)
		assert.ErrorIs(t, err, ErrInvalidFormat, h)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(string(hash), "rahasia"))
	assert.False(t, CheckPassword(string(hash), "salah"))
	assert.False(t, CheckPassword("not-a-hash", "rahasia"))
}
