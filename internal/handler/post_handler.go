package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/logger"
	"udaan-cms/internal/middleware"
	"udaan-cms/internal/service"
)

// PostHandler handles blog post HTTP requests.
type PostHandler struct {
	posts service.PostServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts service.PostServiceInterface) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPosts handles GET /api/posts. Unauthenticated callers only ever
// see published posts; an authenticated admin gets drafts too.
func (h *PostHandler) ListPosts(c *gin.Context) {
	_, authenticated := middleware.GetIdentity(c)

	filter := domain.PostFilter{
		Category:      c.Query("category"),
		FeaturedOnly:  c.Query("featured") == "true",
		IncludeDrafts: authenticated,
	}

	posts, err := h.posts.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("failed to list posts",
			"request_id", middleware.GetRequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("Failed to fetch posts"))
		return
	}

	if posts == nil {
		posts = []domain.Post{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

// GetPost handles GET /api/posts/:id where :id is an id or a slug.
// Drafts are invisible to unauthenticated callers, indistinguishable
// from posts that do not exist.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorBody("Post not found"))
			return
		}
		logger.Error("failed to get post",
			"request_id", middleware.GetRequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("Failed to fetch post"))
		return
	}

	if _, authenticated := middleware.GetIdentity(c); !authenticated && post.Status != domain.StatusPublished {
		c.JSON(http.StatusNotFound, errorBody("Post not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

// CreatePost handles POST /api/posts.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var post domain.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	if err := h.posts.Create(c.Request.Context(), &post); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  verrs,
			})
			return
		}
		logger.Error("failed to create post",
			"request_id", middleware.GetRequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("Failed to create post"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Post created successfully",
		"post":    post,
	})
}

// UpdatePost handles PUT /api/posts/:id.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var post domain.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	if err := h.posts.Update(c.Request.Context(), c.Param("id"), &post); err != nil {
		var verrs validation.Errors
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, errorBody("Post not found"))
		case errors.As(err, &verrs):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  verrs,
			})
		default:
			logger.Error("failed to update post",
				"request_id", middleware.GetRequestID(c), "error", err)
			c.JSON(http.StatusInternalServerError, errorBody("Failed to update post"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post updated successfully",
		"post":    post,
	})
}

// DeletePost handles DELETE /api/posts/:id. Deleting a post that does
// not exist reports success.
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to delete post",
			"request_id", middleware.GetRequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("Failed to delete post"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post deleted successfully",
	})
}
