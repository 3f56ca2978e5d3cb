package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for reviews, both inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a business account.
// At most one review exists per (business user, reviewer) pair.
type Review struct {
	ID             uuid.UUID // The unique ID of the review.
	BusinessUserID uuid.UUID // The reviewed business account.
	ReviewerID     uuid.UUID // The authoring customer, always the authenticated caller.
	Rating         int       // Integer rating within [MinRating, MaxRating].
	Description    string    // Free-text review body.
	CreatedAt      time.Time // Timestamp of when the review was written.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// RatingInRange reports whether the rating lies within the allowed bounds.
func (r *Review) RatingInRange() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}
