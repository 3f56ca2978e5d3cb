package model

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The (business_user_id, reviewer_id)
// pair is unique: a reviewer rates a given business at most once.
type ReviewModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_reviewer"`
	ReviewerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_reviewer"`
	Rating         int       `gorm:"not null"`
	Description    string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time
	UpdatedAt      time.Time `gorm:"index"`

	Business *UserModel `gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
	Reviewer *UserModel `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToReviewDomain converts a GORM ReviewModel to a domain Review entity.
func ToReviewDomain(data *ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:             data.ID,
		BusinessUserID: data.BusinessUserID,
		ReviewerID:     data.ReviewerID,
		Rating:         data.Rating,
		Description:    data.Description,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// FromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func FromReviewDomain(data *entity.Review) *ReviewModel {
	if data == nil {
		return nil
	}

	return &ReviewModel{
		ID:             data.ID,
		BusinessUserID: data.BusinessUserID,
		ReviewerID:     data.ReviewerID,
		Rating:         data.Rating,
		Description:    data.Description,
	}
}
