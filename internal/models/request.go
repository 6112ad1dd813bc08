package models

type AdvanceRequest struct {
	// Style, room type, and budget are option keys from GET /options.
	Style    string  `json:"style,omitempty"`
	RoomType string  `json:"room_type,omitempty"`
	Budget   string  `json:"budget,omitempty"`
	WidthM   float64 `json:"width_m,omitempty"`
	LengthM  float64 `json:"length_m,omitempty"`
}

type BackRequest struct {
	TargetStep int `json:"target_step"`
}

type SetPlanRequest struct {
	Plan string `json:"plan"`
}

type AddFavoriteRequest struct {
	ImageURL string `json:"image_url"`
	RoomType string `json:"room_type"`
	Style    string `json:"style"`
}

type WatermarkRequest struct {
	ImageURL string `json:"image_url"`
}

type ShareRequest struct {
	DesignLink string `json:"design_link"`
	ImageURL   string `json:"image_url,omitempty"`
	// CopyOnly requests only the clipboard path, skipping native share.
	CopyOnly bool `json:"copy_only,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
