package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"udaan-cms/internal/mocks"
)

func TestAdminHandler_InitDB(t *testing.T) {
	t.Run("runs bootstrap", func(t *testing.T) {
		mockBootstrap := mocks.NewMockBootstrapInterface(t)
		handler := NewAdminHandler(mockBootstrap, nil)

		mockBootstrap.EXPECT().Run(mock.Anything).Return(nil)

		router := gin.New()
		router.POST("/api/init-db", handler.InitDB)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/init-db", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Database initialized successfully")
	})

	t.Run("repeated calls keep succeeding", func(t *testing.T) {
		mockBootstrap := mocks.NewMockBootstrapInterface(t)
		handler := NewAdminHandler(mockBootstrap, nil)

		mockBootstrap.EXPECT().Run(mock.Anything).Return(nil).Times(2)

		router := gin.New()
		router.POST("/api/init-db", handler.InitDB)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/init-db", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("returns 500 when bootstrap fails", func(t *testing.T) {
		mockBootstrap := mocks.NewMockBootstrapInterface(t)
		handler := NewAdminHandler(mockBootstrap, nil)

		mockBootstrap.EXPECT().Run(mock.Anything).Return(errors.New("dirty database version"))

		router := gin.New()
		router.POST("/api/init-db", handler.InitDB)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/init-db", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "dirty database version")
	})
}
