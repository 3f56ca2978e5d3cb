package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves all reviews matching the query.
func (srv *reviewService) List(ctx context.Context, query usecase.ListReviewsQuery) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, repository.ReviewQuery{
		BusinessUserID: query.BusinessUserID,
		ReviewerID:     query.ReviewerID,
		Ordering:       query.Ordering,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Create stores a new review written by the acting customer.
func (srv *reviewService) Create(ctx context.Context, actor usecase.Actor, input usecase.CreateReviewInput) (*entity.Review, error) {
	if !actor.IsCustomer() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only customers may write reviews")
	}

	review := &entity.Review{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     actor.ID,
		Rating:         input.Rating,
		Description:    input.Description,
	}
	if !review.RatingInRange() {
		return nil, domainerrors.ErrValidationFailed.WithFieldDetail("rating", "評分必須介於 1 到 5 之間")
	}

	target, err := srv.userRepo.FindByID(ctx, input.BusinessUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrBusinessUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find reviewed business user")
	}
	if !target.IsBusiness() {
		return nil, domainerrors.ErrBusinessUserNotFound
	}

	if _, err := srv.reviewRepo.FindByBusinessAndReviewer(ctx, input.BusinessUserID, actor.ID); err == nil {
		return nil, domainerrors.ErrDuplicateReview
	} else if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to check for an existing review")
	}

	// The unique constraint on (business_user_id, reviewer_id) still backs the
	// check above against concurrent writers.
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrDuplicateReview
		}

		return nil, err
	}

	srv.log(ctx).Info("Review created",
		slog.String("reviewID", review.ID.String()),
		slog.String("businessID", input.BusinessUserID.String()),
		slog.String("reviewerID", actor.ID.String()),
	)

	return review, nil
}
