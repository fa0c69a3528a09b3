package service

import (
	"context"

	"udaan-cms/internal/domain"
)

// PostServiceInterface defines the interface for post content operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	// List returns posts matching the filter, newest publication first.
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	// Get returns the post matching the id or slug.
	Get(ctx context.Context, key string) (*domain.Post, error)
	// Create validates, normalizes, and stores a new post.
	Create(ctx context.Context, post *domain.Post) error
	// Update validates, normalizes, and replaces an existing post.
	Update(ctx context.Context, id string, post *domain.Post) error
	// Delete removes a post; idempotent.
	Delete(ctx context.Context, id string) error
}

// AuthServiceInterface defines the interface for authentication operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Login verifies credentials and returns the identity plus a signed
	// session credential.
	Login(ctx context.Context, username, password string) (*domain.Identity, string, error)
	// Validate verifies a session credential.
	Validate(tokenString string) (*domain.Identity, error)
}

// BootstrapInterface defines the idempotent schema/seed initializer.
type BootstrapInterface interface {
	// Run applies migrations and seeds the default admin when the users
	// table is empty. Safe to call repeatedly.
	Run(ctx context.Context) error
}
