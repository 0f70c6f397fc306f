package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/pkg/apperrors"
	"github.com/yigit/akademik/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *auth.JWTService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "akademik"})
	return NewAuthService(AdminCredentials{Username: "admin", PasswordHash: string(hash)}, jwtService, zerolog.Nop()), jwtService
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.EqualValues(t, 3600, token.ExpiresIn)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "root", Password: "rahasia123"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc, jwtService := newTestAuthService(t)

	_, err := svc.ValidateToken("garbage")
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))

	token, _, err := jwtService.GenerateAccessToken("viewer", "viewer")
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}
