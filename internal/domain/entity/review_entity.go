package entity

import "time"

// Review belongs to exactly one campground. AuthorID and CampgroundID are
// immutable after creation; rating is validated to 1..5 at the boundary.
type Review struct {
	ID             string    `json:"id"`
	CampgroundID   string    `json:"campground_id"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Rating         int       `json:"rating"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}
