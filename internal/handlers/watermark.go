package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"roomlift-backend/internal/models"
	"roomlift-backend/internal/watermark"
)

// FallbackHeader flags a response that carries the unwatermarked original
// because the source image could not be loaded for stamping.
const FallbackHeader = "X-Watermark-Fallback"

type WatermarkHandler struct {
	engine *watermark.Engine
}

func NewWatermarkHandler(engine *watermark.Engine) *WatermarkHandler {
	return &WatermarkHandler{engine: engine}
}

// Apply stamps the wordmark onto the requested image and streams back JPEG
// bytes. When the source cannot be loaded, the client is redirected to the
// original instead of being blocked.
func (h *WatermarkHandler) Apply(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}

	var req models.WatermarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image_url is required"})
		return
	}

	data, err := h.engine.Apply(c.Request.Context(), req.ImageURL)
	if err != nil {
		if errors.Is(err, watermark.ErrSourceLoad) {
			// Offer the unwatermarked original rather than failing the
			// download entirely.
			c.Header(FallbackHeader, "source-load")
			c.Redirect(http.StatusTemporaryRedirect, req.ImageURL)
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to watermark image",
			Message: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "image/jpeg", data)
}
