package review

import (
	"github.com/Ultro163/city-guide/internal/attraction"
	"github.com/Ultro163/city-guide/internal/user"
)

const (
	EventCreated = "review.created"
	EventUpdated = "review.updated"
	EventDeleted = "review.deleted"
)

type Review struct {
	ID         int64              `json:"id"`
	Comment    *string            `json:"comment"`
	Rating     *int               `json:"rating"`
	Author     user.User          `json:"author"`
	Attraction attraction.Details `json:"attraction"`
}

type NewReview struct {
	AuthorID     int64
	AttractionID int64
	Comment      *string
	Rating       *int
}

// UpdateReview carries the caller's identity alongside the fields to change.
// AuthorID and AttractionID must match the stored review.
type UpdateReview struct {
	AuthorID     int64   `json:"author_id"`
	AttractionID int64   `json:"attraction_id"`
	Comment      *string `json:"comment"`
	Rating       *int    `json:"rating"`
}

type createRequest struct {
	Comment *string `json:"comment"`
	Rating  *int    `json:"rating"`
}
