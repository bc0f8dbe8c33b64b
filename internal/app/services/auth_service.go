package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/auth"
	"github.com/mertkaya/edumanage/internal/pkg/logger"
)

// AuthService handles registration and login
type AuthService struct {
	store      storage.Storage
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(store storage.Storage, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		store:      store,
		jwtService: jwtService,
	}
}

// Register creates a new user account with a hashed password and returns a
// signed token for the fresh account.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Email:    req.Email,
		Role:     req.Role,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User registered")

	return s.buildAuthResponse(user)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Same failure as a wrong password, credentials stay unconfirmed.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// GetProfile returns the account information for an authenticated user.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}
