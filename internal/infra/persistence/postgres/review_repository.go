package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := model.FromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid review participant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByBusinessAndReviewer retrieves the review a reviewer wrote for a business user.
func (repo *reviewRepository) FindByBusinessAndReviewer(ctx context.Context, businessUserID, reviewerID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("business_user_id = ? AND reviewer_id = ?", businessUserID, reviewerID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by business and reviewer")
	}

	return model.ToReviewDomain(&reviewM), nil
}

// List retrieves all reviews matching the query.
func (repo *reviewRepository) List(ctx context.Context, query repository.ReviewQuery) ([]*entity.Review, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ReviewModel{})

	if query.BusinessUserID != nil {
		tx = tx.Where("business_user_id = ?", *query.BusinessUserID)
	}
	if query.ReviewerID != nil {
		tx = tx.Where("reviewer_id = ?", *query.ReviewerID)
	}

	switch query.Ordering {
	case repository.ReviewOrderUpdatedAtAsc:
		tx = tx.Order("updated_at ASC")
	case repository.ReviewOrderRatingAsc:
		tx = tx.Order("rating ASC")
	case repository.ReviewOrderRatingDesc:
		tx = tx.Order("rating DESC")
	default:
		// Unknown values fall back to newest first.
		tx = tx.Order("updated_at DESC")
	}

	var reviewModels []*model.ReviewModel
	if err := tx.Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, model.ToReviewDomain(reviewM))
	}

	return reviews, nil
}
