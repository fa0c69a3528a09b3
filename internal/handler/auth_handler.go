package handler

import (
	"errors"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/logger"
	"udaan-cms/internal/middleware"
	"udaan-cms/internal/service"
)

// AuthHandler handles login, logout, and session validation requests.
type AuthHandler struct {
	auth          service.AuthServiceInterface
	sessionTTL    time.Duration
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler. secureCookies should be
// true in production so the session cookie is HTTPS-only.
func NewAuthHandler(auth service.AuthServiceInterface, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		auth:          auth,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. On success the session
// credential is delivered only as an HttpOnly cookie, never in the
// response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Username and password are required"))
		return
	}

	identity, signed, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			c.JSON(http.StatusBadRequest, errorBody("Username and password are required"))
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, errorBody("Invalid username or password"))
		default:
			logger.Error("login failed",
				"request_id", middleware.GetRequestID(c), "error", err)
			c.JSON(http.StatusInternalServerError, errorBody("Login failed"))
		}
		return
	}

	h.setSessionCookie(c, signed, int(h.sessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"id":       identity.ID,
			"username": identity.Username,
			"role":     identity.Role,
		},
	})
}

// Logout handles GET and POST /api/auth/logout by expiring the
// session cookie. Logging out without a session still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Validate handles GET /api/auth/validate. It reports whether the
// request carries a valid session without extending it.
func (h *AuthHandler) Validate(c *gin.Context) {
	tokenString, err := c.Cookie(middleware.AuthCookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":       false,
			"authenticated": false,
			"message":       "Authentication required",
		})
		return
	}

	identity, err := h.auth.Validate(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":       false,
			"authenticated": false,
			"message":       "Invalid or expired token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"authenticated": true,
		"user": gin.H{
			"id":       identity.ID,
			"username": identity.Username,
			"role":     identity.Role,
		},
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, value, maxAge, "/", "", h.secureCookies, true)
}
