package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	reviewRepo *mockRepo.MockReviewRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		UserRepo:   userRepo,
		Logger:     logger,
	})

	return reviewServiceFixtures{
		service:    service,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func TestReviewService_Create_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := customerActor()
	businessUserID := uuid.New()
	business := &entity.User{
		ID:      businessUserID,
		Profile: &entity.Profile{Type: entity.RoleBusiness},
	}

	fx.userRepo.EXPECT().FindByID(ctx, businessUserID).Return(business, nil)
	fx.reviewRepo.EXPECT().
		FindByBusinessAndReviewer(ctx, businessUserID, actor.ID).
		Return(nil, repository.ErrReviewNotFound)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, review *entity.Review) {
			review.ID = uuid.New()
		}).
		Return(nil)

	review, err := fx.service.Create(ctx, actor, usecase.CreateReviewInput{
		BusinessUserID: businessUserID,
		Rating:         5,
		Description:    "Quick turnaround and great communication",
	})

	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, businessUserID, review.BusinessUserID)
	assert.Equal(t, actor.ID, review.ReviewerID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_Create_BusinessForbidden(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	review, err := fx.service.Create(ctx, businessActor(), usecase.CreateReviewInput{
		BusinessUserID: uuid.New(),
		Rating:         4,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		review, err := fx.service.Create(ctx, customerActor(), usecase.CreateReviewInput{
			BusinessUserID: uuid.New(),
			Rating:         rating,
		})

		assert.Error(t, err)
		assert.Nil(t, review)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), "rating")
	}
}

func TestReviewService_Create_TargetNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	targetID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)

	review, err := fx.service.Create(ctx, customerActor(), usecase.CreateReviewInput{
		BusinessUserID: targetID,
		Rating:         3,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessUserNotFound))
}

func TestReviewService_Create_TargetIsCustomer(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	targetID := uuid.New()
	target := &entity.User{
		ID:      targetID,
		Profile: &entity.Profile{Type: entity.RoleCustomer},
	}

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)

	review, err := fx.service.Create(ctx, customerActor(), usecase.CreateReviewInput{
		BusinessUserID: targetID,
		Rating:         3,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessUserNotFound))
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := customerActor()
	businessUserID := uuid.New()
	business := &entity.User{
		ID:      businessUserID,
		Profile: &entity.Profile{Type: entity.RoleBusiness},
	}
	existing := &entity.Review{
		ID:             uuid.New(),
		BusinessUserID: businessUserID,
		ReviewerID:     actor.ID,
		Rating:         4,
	}

	fx.userRepo.EXPECT().FindByID(ctx, businessUserID).Return(business, nil)
	fx.reviewRepo.EXPECT().
		FindByBusinessAndReviewer(ctx, businessUserID, actor.ID).
		Return(existing, nil)

	review, err := fx.service.Create(ctx, actor, usecase.CreateReviewInput{
		BusinessUserID: businessUserID,
		Rating:         2,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_Create_DuplicateRace(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := customerActor()
	businessUserID := uuid.New()
	business := &entity.User{
		ID:      businessUserID,
		Profile: &entity.Profile{Type: entity.RoleBusiness},
	}

	// A concurrent writer inserts between the lookup and the insert, so the
	// unique constraint fires even though the lookup saw nothing.
	fx.userRepo.EXPECT().FindByID(ctx, businessUserID).Return(business, nil)
	fx.reviewRepo.EXPECT().
		FindByBusinessAndReviewer(ctx, businessUserID, actor.ID).
		Return(nil, repository.ErrReviewNotFound)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(repository.ErrDuplicateReview)

	review, err := fx.service.Create(ctx, actor, usecase.CreateReviewInput{
		BusinessUserID: businessUserID,
		Rating:         2,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_List_PassesFilters(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessUserID := uuid.New()
	query := usecase.ListReviewsQuery{
		BusinessUserID: &businessUserID,
		Ordering:       repository.ReviewOrderRatingDesc,
	}

	reviews := []*entity.Review{
		{ID: uuid.New(), BusinessUserID: businessUserID, Rating: 5},
		{ID: uuid.New(), BusinessUserID: businessUserID, Rating: 3},
	}
	fx.reviewRepo.EXPECT().
		List(ctx, repository.ReviewQuery{
			BusinessUserID: &businessUserID,
			Ordering:       repository.ReviewOrderRatingDesc,
		}).
		Return(reviews, nil)

	listed, err := fx.service.List(ctx, query)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
