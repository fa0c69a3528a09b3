package handler

import "github.com/gin-gonic/gin"

// errorBody builds the failure envelope shared by all endpoints.
func errorBody(message string) gin.H {
	return gin.H{"success": false, "message": message}
}
