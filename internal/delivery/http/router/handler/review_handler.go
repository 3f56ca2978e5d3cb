package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for posting a review.
type CreateReviewRequest struct {
	BusinessUserID uuid.UUID `json:"business_user" validate:"required"`
	Rating         int       `json:"rating" validate:"required"`
	Description    string    `json:"description"`
}

// List handles listing reviews, optionally filtered by business user or reviewer.
func (h *ReviewHandler) List(c echo.Context) error {
	var query usecase.ListReviewsQuery

	if raw := c.QueryParam("business_user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "Invalid business user ID")
		}
		query.BusinessUserID = &id
	}
	if raw := c.QueryParam("reviewer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "Invalid reviewer ID")
		}
		query.ReviewerID = &id
	}
	query.Ordering = c.QueryParam("ordering")

	reviews, err := h.reviewUC.List(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, renderReview(review))
	}

	return response.Success(c, http.StatusOK, results, "")
}

// Create handles posting a review of a business user.
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.reviewUC.Create(c.Request().Context(), actor, usecase.CreateReviewInput{
		BusinessUserID: req.BusinessUserID,
		Rating:         req.Rating,
		Description:    req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, renderReview(review), "Review created")
}
