package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage/memory"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/auth"
)

func newTestAuthService(store *memory.Store) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "edumanage.test",
	})
	return NewAuthService(store, jwtService)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(memory.New())
	ctx := context.Background()

	resp, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "rahul",
		Password: "secret123",
		Email:    "rahul@test.edu",
		Role:     models.RoleStaff,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, "staff", resp.User.Role)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "rahul", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService(memory.New())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "rahul", Password: "secret123", Email: "rahul@test.edu"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "rahul", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestAuthService(memory.New())

	// Unknown accounts fail exactly like wrong passwords.
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestAuthService(memory.New())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "rahul", Password: "secret123", Email: "rahul@test.edu"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "rahul", Password: "secret123", Email: "other@test.edu"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}
