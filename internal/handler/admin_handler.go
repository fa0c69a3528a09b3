package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"udaan-cms/internal/logger"
	"udaan-cms/internal/middleware"
	"udaan-cms/internal/service"
)

// AdminHandler handles database initialization and connectivity checks.
type AdminHandler struct {
	bootstrap service.BootstrapInterface
	db        *pgxpool.Pool
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bootstrap service.BootstrapInterface, db *pgxpool.Pool) *AdminHandler {
	return &AdminHandler{bootstrap: bootstrap, db: db}
}

// InitDB handles POST /api/init-db. Bootstrap is idempotent, so
// calling this on an initialized database is harmless.
func (h *AdminHandler) InitDB(c *gin.Context) {
	if err := h.bootstrap.Run(c.Request.Context()); err != nil {
		logger.Error("database initialization failed",
			"request_id", middleware.GetRequestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("Database initialization failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database initialized successfully",
	})
}

// TestDB handles GET /api/test-db, a plain connectivity check.
func (h *AdminHandler) TestDB(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("Database connection failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connection successful",
	})
}
