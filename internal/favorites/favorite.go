package favorites

import (
	"net/url"
	"strings"
	"time"
)

// Favorite is a design the user chose to keep. RoomType and Style are display
// labels fixed at creation time, not option keys.
type Favorite struct {
	ID           int64  `json:"id"`
	ThumbnailURL string `json:"thumbnail_url"`
	RoomType     string `json:"room_type"`
	Style        string `json:"style"`
	Date         string `json:"date"`
}

// Projection is the lightweight mirror entry kept for quick reads and for
// consumers that predate the indexed store.
type Projection struct {
	ID       int64  `json:"id"`
	RoomType string `json:"room_type"`
	Style    string `json:"style"`
	Date     string `json:"date"`
}

func (f Favorite) projection() Projection {
	return Projection{ID: f.ID, RoomType: f.RoomType, Style: f.Style, Date: f.Date}
}

// resizableHosts are image CDNs that honor query-based resizing.
var resizableHosts = []string{
	"images.unsplash.com",
	"cdn.roomlift.ai",
}

// ThumbnailURL rewrites a full-resolution image URL to a smaller variant when
// the host supports query-based resizing; otherwise it returns the source
// unchanged.
func ThumbnailURL(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return src
	}
	for _, host := range resizableHosts {
		if strings.EqualFold(u.Host, host) {
			q := u.Query()
			q.Set("w", "400")
			q.Set("q", "80")
			u.RawQuery = q.Encode()
			return u.String()
		}
	}
	return src
}

// NewFavorite builds a record with a clock-derived id and an ISO-8601 date.
func NewFavorite(imageURL, roomTypeLabel, styleLabel string, now time.Time) Favorite {
	return Favorite{
		ID:           now.UnixMilli(),
		ThumbnailURL: ThumbnailURL(imageURL),
		RoomType:     roomTypeLabel,
		Style:        styleLabel,
		Date:         now.UTC().Format(time.RFC3339),
	}
}
