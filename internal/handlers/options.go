package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roomlift-backend/internal/models"
	"roomlift-backend/internal/options"
)

// OptionsHandler exposes the closed option catalogs so clients never hardcode
// style, room, or budget keys.
func OptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.OptionsResponse{
		Styles:    options.Styles(),
		RoomTypes: options.RoomTypes(),
		Budgets:   options.Budgets(),
	})
}
