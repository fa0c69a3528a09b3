package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"udaan-cms/internal/domain"
)

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

const postColumns = `id, title, slug, excerpt, content, status, featured, category, tags, author, author_role, published_at, image_url, read_time, created_at, updated_at`

// List returns posts ordered by publication date descending. Category
// and featured filters imply published-only; an unfiltered listing
// returns drafts as well only when the filter says so. The visibility
// decision for anonymous callers is made at the API boundary, not here.
func (r *PostgresPostRepository) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	var args []interface{}

	switch {
	case filter.Category != "" && filter.Category != "all":
		query += ` WHERE category = $1 AND status = 'published'`
		args = append(args, filter.Category)
	case filter.FeaturedOnly:
		query += ` WHERE featured = TRUE AND status = 'published'`
	case !filter.IncludeDrafts:
		query += ` WHERE status = 'published'`
	}

	query += ` ORDER BY published_at DESC NULLS LAST, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return posts, nil
}

// GetByIDOrSlug looks up by identifier first, then by slug.
func (r *PostgresPostRepository) GetByIDOrSlug(ctx context.Context, key string) (*domain.Post, error) {
	post, err := r.getWhere(ctx, "id", key)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return r.getWhere(ctx, "slug", key)
}

func (r *PostgresPostRepository) getWhere(ctx context.Context, column, value string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE ` + column + ` = $1`
	row := r.pool.QueryRow(ctx, query, value)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post by %s: %w", column, err)
	}
	return post, nil
}

// Create inserts a new post row. Tags are stored as a JSON array.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	tagsJSON, err := json.Marshal(post.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, slug, excerpt, content, status, featured, category, tags, author, author_role, published_at, image_url, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content,
		post.Status, post.Featured, post.Category, tagsJSON,
		post.Author, post.AuthorRole, post.PublishedAt, post.ImageURL, post.ReadTime,
	)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// Update is a full-row replace. A missing id is reported as
// domain.ErrNotFound instead of silently affecting zero rows.
func (r *PostgresPostRepository) Update(ctx context.Context, id string, post *domain.Post) error {
	tagsJSON, err := json.Marshal(post.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, status = $5,
		    featured = $6, category = $7, tags = $8, author = $9,
		    author_role = $10, published_at = $11, image_url = $12,
		    read_time = $13, updated_at = NOW()
		WHERE id = $14
	`,
		post.Title, post.Slug, post.Excerpt, post.Content, post.Status,
		post.Featured, post.Category, tagsJSON, post.Author,
		post.AuthorRole, post.PublishedAt, post.ImageURL, post.ReadTime, id,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the row. Idempotent: a second delete of the same id
// succeeds without error.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// scanPost reads one row into a Post. Malformed stored tags degrade to
// an empty list rather than failing the read.
func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	var rawTags []byte

	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content,
		&post.Status, &post.Featured, &post.Category, &rawTags,
		&post.Author, &post.AuthorRole, &post.PublishedAt, &post.ImageURL,
		&post.ReadTime, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Tags = domain.ParseStoredTags(rawTags)
	return &post, nil
}
