package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/mocks"
	"udaan-cms/internal/service"
)

func TestBootstrapService_Run(t *testing.T) {
	ctx := context.Background()
	noopMigrate := func() error { return nil }

	t.Run("seeds admin when no accounts exist", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)

		mockUsers.EXPECT().Count(mock.Anything).Return(0, nil)

		var created *domain.User
		mockUsers.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(ctx context.Context, user *domain.User) {
				created = user
			}).
			Return(nil)

		svc := service.NewBootstrapService(noopMigrate, mockUsers, "admin", "changeme")

		err := svc.Run(ctx)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "admin", created.Username)
		assert.Equal(t, domain.DefaultRole, created.Role)
		assert.NotEmpty(t, created.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("changeme")))
	})

	t.Run("skips seeding when accounts already exist", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		mockUsers.EXPECT().Count(mock.Anything).Return(1, nil)

		svc := service.NewBootstrapService(noopMigrate, mockUsers, "admin", "changeme")

		err := svc.Run(ctx)

		assert.NoError(t, err)
	})

	t.Run("skips seeding without a configured password", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		mockUsers.EXPECT().Count(mock.Anything).Return(0, nil)

		svc := service.NewBootstrapService(noopMigrate, mockUsers, "admin", "")

		err := svc.Run(ctx)

		assert.NoError(t, err)
	})

	t.Run("fails when migrations fail", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		svc := service.NewBootstrapService(func() error {
			return errors.New("dirty database version")
		}, mockUsers, "admin", "changeme")

		err := svc.Run(ctx)

		assert.ErrorContains(t, err, "run migrations")
	})

	t.Run("repeated runs stop after first seed", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)

		count := 0
		mockUsers.EXPECT().Count(mock.Anything).RunAndReturn(func(ctx context.Context) (int, error) {
			return count, nil
		})
		mockUsers.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(ctx context.Context, user *domain.User) { count++ }).
			Return(nil).
			Once()

		svc := service.NewBootstrapService(noopMigrate, mockUsers, "admin", "changeme")

		require.NoError(t, svc.Run(ctx))
		require.NoError(t, svc.Run(ctx))
	})
}
