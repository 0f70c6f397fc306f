package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/akademik/internal/app/models/dto"
	"github.com/yigit/akademik/internal/pkg/apperrors"
	"github.com/yigit/akademik/internal/pkg/auth"
)

// AuthService authenticates the administrator and verifies bearer tokens
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	ValidateToken(token string) (*auth.Claims, error)
}

// AdminCredentials is the single administrator account.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	admin      AdminCredentials
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(admin AdminCredentials, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login issues an access token when the credentials match the administrator account
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passOK := s.admin.PasswordHash != "" && auth.CheckPassword(s.admin.PasswordHash, req.Password)
	if !userOK || !passOK {
		s.logger.Warn().Str("username", username).Msg("Failed admin login")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(username, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("Admin logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// ValidateToken maps token failures to application errors
func (s *authServiceImpl) ValidateToken(token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	if claims.Role != auth.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}
	return claims, nil
}
