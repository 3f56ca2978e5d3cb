package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a business user.
type CreateReviewInput struct {
	BusinessUserID uuid.UUID
	Rating         int
	Description    string
}

// ListReviewsQuery mirrors the review listing's filter and ordering surface.
type ListReviewsQuery struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	// List retrieves all reviews matching the query.
	List(ctx context.Context, query ListReviewsQuery) ([]*entity.Review, error)

	// Create stores a new review written by the acting customer. A customer
	// may review a given business user only once.
	Create(ctx context.Context, actor Actor, input CreateReviewInput) (*entity.Review, error)
}
