package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roomlift-backend/internal/middleware"
	"roomlift-backend/internal/models"
)

// userID pulls the authenticated user out of the gin context. It writes the
// 401 response itself so callers can simply return on !ok.
func userID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid user id"})
		return "", false
	}
	return id, true
}
