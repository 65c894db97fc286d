package entity

import (
	"strings"
	"time"
)

// Point is a WGS84 coordinate resolved once from geocoding at creation.
// It is never recomputed, even when the location text changes later.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Image is one uploaded picture on a campground. Filename is the deletable
// object name in the image store; Position preserves upload order for display.
type Image struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Position int    `json:"position"`
}

// Thumbnail returns a resized variant URL when the store supports
// path-based transforms, otherwise the original URL.
func (i Image) Thumbnail() string {
	if strings.Contains(i.URL, "/upload") {
		return strings.Replace(i.URL, "/upload", "/upload/w_200", 1)
	}
	return i.URL
}

// Campground is the aggregate root for a listing.
// AuthorID is set once at creation and never reassigned. Reviews are loaded
// by query over the reviews table (campground_id is the source of truth for
// membership); the aggregate carries them for display only.
type Campground struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Price          float64   `json:"price"`
	Geometry       Point     `json:"geometry"`
	Images         []Image   `json:"images"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Reviews        []Review  `json:"reviews,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
