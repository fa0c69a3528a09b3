package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/metrics"
)

const (
	// AuthCookieName is the session cookie carrying the signed credential.
	AuthCookieName = "auth_token"
	// IdentityKey is the context key holding the validated identity.
	IdentityKey = "auth_identity"
)

// TokenVerifier validates a session credential and returns the
// identity embedded in it.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// RequireAuth rejects requests without a valid session cookie. This is
// the server-side boundary for all mutating post endpoints; the
// client-side admin guard is UX only.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AuthCookieName)
		if err != nil || tokenString == "" {
			metrics.ObserveSessionValidation("missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}

		identity, err := verifier.Verify(tokenString)
		if err != nil {
			metrics.ObserveSessionValidation("invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		metrics.ObserveSessionValidation("success")
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// OptionalAuth validates the session cookie when present but never
// rejects. Read endpoints use it to decide draft visibility.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AuthCookieName)
		if err == nil && tokenString != "" {
			if identity, err := verifier.Verify(tokenString); err == nil {
				c.Set(IdentityKey, identity)
			}
		}
		c.Next()
	}
}

// GetIdentity retrieves the validated identity from the gin context.
func GetIdentity(c *gin.Context) (*domain.Identity, bool) {
	if v, exists := c.Get(IdentityKey); exists {
		if identity, ok := v.(*domain.Identity); ok {
			return identity, true
		}
	}
	return nil, false
}
