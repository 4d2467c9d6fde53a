package entities

import (
	"time"
)

// Review represents a user review of a space. Rating is nil when the
// reviewer has not rated yet; unrated reviews are excluded from the
// average but still counted.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	SpaceID   int64     `json:"space_id" db:"space_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Rating    *int      `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReviewView is the external projection of a Review.
type ReviewView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Rating    *int      `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
