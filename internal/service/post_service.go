package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/metrics"
	"udaan-cms/internal/repository"
	"udaan-cms/internal/validator"
)

// wordsPerMinute is the reading speed assumed for read-time estimates.
const wordsPerMinute = 200

// PostService implements post content operations on top of the
// repository: slug defaulting, validation, read-time computation, and
// the publish-date state machine.
type PostService struct {
	repo      repository.PostRepository
	validator *validator.Validator
}

// NewPostService creates a new PostService.
func NewPostService(repo repository.PostRepository, v *validator.Validator) *PostService {
	return &PostService{repo: repo, validator: v}
}

// List returns posts matching the filter.
func (s *PostService) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		metrics.ObservePostOperation("list", "error")
		return nil, err
	}
	metrics.ObservePostOperation("list", "success")
	return posts, nil
}

// Get returns the post matching the id or slug.
func (s *PostService) Get(ctx context.Context, key string) (*domain.Post, error) {
	return s.repo.GetByIDOrSlug(ctx, key)
}

// Create stores a new post. The slug defaults to the id (and vice
// versa) when only one is supplied; a post with neither is rejected.
func (s *PostService) Create(ctx context.Context, post *domain.Post) error {
	resolveKeys(post)
	if err := s.validator.ValidatePost(post); err != nil {
		return fmt.Errorf("validate post: %w", err)
	}

	post.ReadTime = EstimateReadTime(post.Content)
	s.applyPublishRules(post, nil)

	if err := s.repo.Create(ctx, post); err != nil {
		metrics.ObservePostOperation("create", "error")
		return err
	}
	metrics.ObservePostOperation("create", "success")
	return nil
}

// Update replaces an existing post. The stored publication date is
// preserved when the update keeps the post published without supplying
// one; unpublishing clears it.
func (s *PostService) Update(ctx context.Context, id string, post *domain.Post) error {
	existing, err := s.repo.GetByIDOrSlug(ctx, id)
	if err != nil {
		return err
	}

	post.ID = existing.ID
	resolveKeys(post)
	if err := s.validator.ValidatePost(post); err != nil {
		return fmt.Errorf("validate post: %w", err)
	}

	post.ReadTime = EstimateReadTime(post.Content)
	s.applyPublishRules(post, existing)

	if err := s.repo.Update(ctx, existing.ID, post); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		metrics.ObservePostOperation("update", "error")
		return err
	}
	metrics.ObservePostOperation("update", "success")
	return nil
}

// Delete removes a post. Deleting a nonexistent id succeeds.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		metrics.ObservePostOperation("delete", "error")
		return err
	}
	metrics.ObservePostOperation("delete", "success")
	return nil
}

// applyPublishRules enforces the status/publication-date invariant:
// drafts never carry a publication date; entering published stamps the
// current date once and later edits keep the original unless the
// caller supplies an explicit override.
func (s *PostService) applyPublishRules(post *domain.Post, existing *domain.Post) {
	if post.Status == domain.StatusDraft {
		post.PublishedAt = nil
		return
	}

	if post.PublishedAt != nil && *post.PublishedAt != "" {
		return // explicit override wins
	}

	if existing != nil && existing.PublishedAt != nil && *existing.PublishedAt != "" {
		post.PublishedAt = existing.PublishedAt
		return
	}

	stamped := time.Now().Format(domain.PublishedDateFormat)
	post.PublishedAt = &stamped
}

// resolveKeys fills a missing slug from the id and a missing id from
// the slug. Validation rejects the post when neither is present.
func resolveKeys(post *domain.Post) {
	if post.Slug == "" {
		post.Slug = post.ID
	}
	if post.ID == "" {
		post.ID = post.Slug
	}
}

// EstimateReadTime computes ceil(wordCount/200) formatted for display,
// e.g. "2 min read" for 400 words.
func EstimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}
