package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/mocks"
	"udaan-cms/internal/service"
	"udaan-cms/internal/token"
	"udaan-cms/internal/validator"
)

const testSecret = "test-signing-secret"

func fixtureUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := service.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           "7f8c9e1a-0b2d-4c3e-9f4a-5b6c7d8e9f0a",
		Username:     "admin",
		PasswordHash: hash,
		Role:         domain.DefaultRole,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := token.NewService(testSecret, 24*time.Hour)

	t.Run("returns identity and verifiable token for valid credentials", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := service.NewAuthService(mockUsers, tokens, validator.NewValidator())

		user := fixtureUser(t, "s3cret-pass")
		mockUsers.EXPECT().
			GetByUsername(mock.Anything, "admin").
			Return(user, nil)

		identity, signed, err := svc.Login(ctx, "admin", "s3cret-pass")

		require.NoError(t, err)
		require.NotNil(t, identity)
		assert.Equal(t, user.ID, identity.ID)
		assert.Equal(t, "admin", identity.Username)
		require.NotEmpty(t, signed)

		verified, err := tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "admin", verified.Username)
		assert.Equal(t, domain.DefaultRole, verified.Role)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := service.NewAuthService(mockUsers, tokens, validator.NewValidator())

		mockUsers.EXPECT().
			GetByUsername(mock.Anything, "admin").
			Return(fixtureUser(t, "s3cret-pass"), nil)

		_, _, err := svc.Login(ctx, "admin", "wrong-pass")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown account looks like wrong password", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := service.NewAuthService(mockUsers, tokens, validator.NewValidator())

		mockUsers.EXPECT().
			GetByUsername(mock.Anything, "ghost").
			Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "ghost", "whatever")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("rejects missing username", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := service.NewAuthService(mockUsers, tokens, validator.NewValidator())

		_, _, err := svc.Login(ctx, "", "s3cret-pass")

		require.Error(t, err)
		var verrs validation.Errors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("rejects missing password", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := service.NewAuthService(mockUsers, tokens, validator.NewValidator())

		_, _, err := svc.Login(ctx, "admin", "")

		require.Error(t, err)
		var verrs validation.Errors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := service.NewAuthService(mockUsers, tokens, validator.NewValidator())

		mockUsers.EXPECT().
			GetByUsername(mock.Anything, "admin").
			Return(nil, errors.New("connection refused"))

		_, _, err := svc.Login(ctx, "admin", "s3cret-pass")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Validate(t *testing.T) {
	tokens := token.NewService(testSecret, 24*time.Hour)
	mockUsers := mocks.NewMockUserRepository(t)
	svc := service.NewAuthService(mockUsers, tokens, validator.NewValidator())

	t.Run("accepts a token it issued", func(t *testing.T) {
		signed, err := tokens.Sign(domain.Identity{ID: "u1", Username: "admin", Role: "admin"})
		require.NoError(t, err)

		identity, err := svc.Validate(signed)

		require.NoError(t, err)
		assert.Equal(t, "admin", identity.Username)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")

		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := service.HashPassword("open-sesame")
	require.NoError(t, err)
	assert.NotEqual(t, "open-sesame", hash)
	assert.True(t, len(hash) > 50)
}
