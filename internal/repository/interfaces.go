package repository

import (
	"context"

	"udaan-cms/internal/domain"
)

// PostRepository defines methods for post data access.
type PostRepository interface {
	// List returns posts ordered by publication date descending,
	// restricted by the filter.
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	// GetByIDOrSlug looks a post up by id first, then by slug.
	GetByIDOrSlug(ctx context.Context, key string) (*domain.Post, error)
	// Create inserts a new post row.
	Create(ctx context.Context, post *domain.Post) error
	// Update replaces all mutable columns of the row with the given id.
	Update(ctx context.Context, id string, post *domain.Post) error
	// Delete removes the row; deleting a nonexistent id is not an error.
	Delete(ctx context.Context, id string) error
}

// UserRepository defines methods for admin account data access.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int, error)
}
