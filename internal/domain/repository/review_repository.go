package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when a review does not exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the reviewer has already rated the business.
	ErrDuplicateReview = errors.New("duplicate review for business and reviewer")
)

// Review listing ordering values accepted by ReviewQuery. Unlike offers,
// an unrecognized value falls back to -updated_at.
const (
	ReviewOrderUpdatedAtAsc  = "updated_at"
	ReviewOrderUpdatedAtDesc = "-updated_at"
	ReviewOrderRatingAsc     = "rating"
	ReviewOrderRatingDesc    = "-rating"
)

// ReviewQuery describes the filter and ordering inputs of the review listing.
type ReviewQuery struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string
}

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review. A second review for the same
	// (business user, reviewer) pair yields ErrDuplicateReview.
	Create(ctx context.Context, review *entity.Review) error

	// FindByBusinessAndReviewer retrieves the review a reviewer wrote for a
	// business user, if any.
	FindByBusinessAndReviewer(ctx context.Context, businessUserID, reviewerID uuid.UUID) (*entity.Review, error)

	// List retrieves all reviews matching the query.
	List(ctx context.Context, query ReviewQuery) ([]*entity.Review, error)
}
