package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"roomlift-backend/internal/favorites"
	"roomlift-backend/internal/models"
	"roomlift-backend/internal/options"
)

type FavoritesHandler struct {
	repo *favorites.Repository
}

func NewFavoritesHandler(repo *favorites.Repository) *FavoritesHandler {
	return &FavoritesHandler{repo: repo}
}

func (h *FavoritesHandler) Add(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.AddFavoriteRequest
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

	// Accept either option keys or already-denormalized labels; store labels.
	roomLabel := req.RoomType
	if rt, err := options.ParseRoomType(req.RoomType); err == nil {
		roomLabel = rt.Label()
	}
	styleLabel := req.Style
	if st, err := options.ParseStyle(req.Style); err == nil {
		styleLabel = st.Label()
	}
	if roomLabel == "" || styleLabel == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "room_type and style are required"})
		return
	}

	favorite, err := h.repo.Add(c.Request.Context(), uid, req.ImageURL, roomLabel, styleLabel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save favorite",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, favorite)
}

func (h *FavoritesHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	list := h.repo.List(c.Request.Context(), uid)
	if list == nil {
		list = []favorites.Favorite{}
	}
	c.JSON(http.StatusOK, models.FavoriteListResponse{Favorites: list})
}

func (h *FavoritesHandler) Delete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("favorite_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid favorite id"})
		return
	}

	if err := h.repo.Remove(c.Request.Context(), uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete favorite",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite deleted successfully"})
}

// Check reports membership by the denormalized room/style label pair, matching
// how the result screen toggles its save button.
func (h *FavoritesHandler) Check(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	roomLabel := c.Query("room_type")
	styleLabel := c.Query("style")
	if roomLabel == "" || styleLabel == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "room_type and style query parameters are required"})
		return
	}
	if rt, err := options.ParseRoomType(roomLabel); err == nil {
		roomLabel = rt.Label()
	}
	if st, err := options.ParseStyle(styleLabel); err == nil {
		styleLabel = st.Label()
	}

	found, id := h.repo.IsFavorite(c.Request.Context(), uid, roomLabel, styleLabel)
	resp := models.FavoriteCheckResponse{IsFavorite: found}
	if found {
		resp.FavoriteID = id
	}
	c.JSON(http.StatusOK, resp)
}
