package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/logger"
	"udaan-cms/internal/repository"
)

// BootstrapService initializes the schema and seeds the default admin
// account. Every step is idempotent, so startup and the init-db
// endpoint can both run it.
type BootstrapService struct {
	migrate       func() error
	users         repository.UserRepository
	adminUsername string
	adminPassword string
}

// NewBootstrapService creates a new BootstrapService. migrate applies
// pending schema migrations and must be safe to re-run.
func NewBootstrapService(migrate func() error, users repository.UserRepository, adminUsername, adminPassword string) *BootstrapService {
	return &BootstrapService{
		migrate:       migrate,
		users:         users,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Run applies migrations, then seeds exactly one default admin when
// the users table is empty. The seed password comes from configuration
// and is stored only as a bcrypt hash.
func (s *BootstrapService) Run(ctx context.Context) error {
	if err := s.migrate(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("admin account already present, skipping seed")
		return nil
	}

	if s.adminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping default admin seed")
		return nil
	}

	hash, err := HashPassword(s.adminPassword)
	if err != nil {
		return err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     s.adminUsername,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("seeded default admin account",
		slog.String("username", s.adminUsername))
	return nil
}
