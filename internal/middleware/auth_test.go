package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/middleware"
	"udaan-cms/internal/token"
)

func newVerifier() *token.Service {
	return token.NewService("test-secret", 24*time.Hour)
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequireAuth(newVerifier()))
	router.GET("/protected", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequireAuth(newVerifier()))
	router.GET("/protected", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "garbage"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestRequireAuth_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := newVerifier()

	signed, err := verifier.Sign(domain.Identity{ID: "1", Username: "admin", Role: "admin"})
	require.NoError(t, err)

	var captured *domain.Identity
	router := gin.New()
	router.Use(middleware.RequireAuth(verifier))
	router.GET("/protected", func(c *gin.Context) {
		captured, _ = middleware.GetIdentity(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: signed})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "admin", captured.Username)
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := newVerifier()

	var authenticated bool
	router := gin.New()
	router.Use(middleware.OptionalAuth(verifier))
	router.GET("/posts", func(c *gin.Context) {
		_, authenticated = middleware.GetIdentity(c)
		c.Status(http.StatusOK)
	})

	t.Run("no cookie continues unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, authenticated)
	})

	t.Run("bad cookie continues unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "garbage"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, authenticated)
	})

	t.Run("valid cookie authenticates", func(t *testing.T) {
		signed, err := verifier.Sign(domain.Identity{ID: "1", Username: "admin", Role: "admin"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: signed})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, authenticated)
	})
}
