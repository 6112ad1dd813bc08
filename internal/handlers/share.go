package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"roomlift-backend/internal/models"
	"roomlift-backend/internal/share"
	"roomlift-backend/internal/watermark"
)

type ShareHandler struct {
	broker *share.Broker
	engine *watermark.Engine
}

func NewShareHandler(broker *share.Broker, engine *watermark.Engine) *ShareHandler {
	return &ShareHandler{broker: broker, engine: engine}
}

func (h *ShareHandler) Share(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}

	var req models.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if req.DesignLink == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "design_link is required"})
		return
	}

	if req.CopyOnly {
		if err := h.broker.CopyLink(c.Request.Context(), req.DesignLink); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to copy link",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"copied": true})
		return
	}

	// Attach the watermarked image when the share target accepts binaries.
	// A source-load failure shares without the attachment.
	var imageJPEG []byte
	if req.ImageURL != "" {
		data, err := h.engine.Apply(c.Request.Context(), req.ImageURL)
		if err != nil {
			if !errors.Is(err, watermark.ErrSourceLoad) {
				log.Printf("Warning: watermarking for share failed: %v", err)
			}
		} else {
			imageJPEG = data
		}
	}

	result := h.broker.Share(c.Request.Context(), req.DesignLink, imageJPEG)
	c.JSON(http.StatusOK, models.ShareResponse{Result: result})
}
