package models

import (
	"time"

	"roomlift-backend/internal/favorites"
	"roomlift-backend/internal/options"
	"roomlift-backend/internal/share"
)

type SessionResponse struct {
	SessionID    string          `json:"session_id"`
	Step         int             `json:"step"`
	RoomImageRef string          `json:"room_image_ref,omitempty"`
	Style        string          `json:"style,omitempty"`
	RoomType     string          `json:"room_type,omitempty"`
	Budget       string          `json:"budget,omitempty"`
	WidthM       float64         `json:"width_m,omitempty"`
	LengthM      float64         `json:"length_m,omitempty"`
	Result       *DesignResponse `json:"result,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type DesignResponse struct {
	ImageURL       string   `json:"image_url"`
	IsFallback     bool     `json:"is_fallback"`
	FallbackReason string   `json:"fallback_reason,omitempty"`
	Suggestions    []string `json:"suggestions"`
}

type ValidationResponse struct {
	Valid   bool   `json:"valid"`
	Step    int    `json:"step"`
	Message string `json:"message,omitempty"`
}

type UpgradeRequiredResponse struct {
	UpgradeRequired bool   `json:"upgrade_required"`
	Message         string `json:"message"`
}

type CreditsResponse struct {
	Plan      string `json:"plan"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Unlimited bool   `json:"unlimited"`
}

type OptionsResponse struct {
	Styles    []options.Catalog `json:"styles"`
	RoomTypes []options.Catalog `json:"room_types"`
	Budgets   []options.Catalog `json:"budgets"`
}

type FavoriteListResponse struct {
	Favorites []favorites.Favorite `json:"favorites"`
}

type FavoriteCheckResponse struct {
	IsFavorite bool  `json:"is_favorite"`
	FavoriteID int64 `json:"favorite_id,omitempty"`
}

type ShareResponse struct {
	Result share.Result `json:"result"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
