package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer-related handlers.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler.
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		cfg:     params.Config,
		logger:  params.Logger,
	}
}

// OfferDetailRequest represents one pricing tier in an offer create request.
type OfferDetailRequest struct {
	Title              string   `json:"title" validate:"required"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" validate:"required"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type" validate:"required"`
}

// CreateOfferRequest represents the request body for creating an offer.
type CreateOfferRequest struct {
	Title       string               `json:"title" validate:"required"`
	Image       string               `json:"image"`
	Description string               `json:"description"`
	Details     []OfferDetailRequest `json:"details" validate:"required"`
}

// OfferDetailPatchRequest represents one tier entry in an offer patch.
type OfferDetailPatchRequest struct {
	OfferType          string    `json:"offer_type"`
	Title              *string   `json:"title"`
	Revisions          *int      `json:"revisions"`
	DeliveryTimeInDays *int      `json:"delivery_time_in_days"`
	Price              *float64  `json:"price"`
	Features           *[]string `json:"features"`
}

// UpdateOfferRequest represents the request body for an offer patch.
type UpdateOfferRequest struct {
	Title       *string                   `json:"title"`
	Image       *string                   `json:"image"`
	Description *string                   `json:"description"`
	Details     []OfferDetailPatchRequest `json:"details"`
}

// List handles the public offer listing with filters, search, ordering and pagination.
func (h *OfferHandler) List(c echo.Context) error {
	query, ok := h.parseListQuery(c)
	if !ok {
		return nil
	}

	page, err := h.offerUC.List(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]OfferListItem, 0, len(page.Results))
	for _, offer := range page.Results {
		results = append(results, renderOfferListItem(offer, true))
	}

	return response.Success(c, http.StatusOK, OfferPageResponse{
		Count:   page.Count,
		Results: results,
	}, "")
}

// Get handles retrieving a single offer.
func (h *OfferHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	offer, err := h.offerUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderOfferListItem(offer, false), "")
}

// GetDetail handles retrieving a single pricing tier.
func (h *OfferHandler) GetDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer detail ID")
	}

	detail, err := h.offerUC.GetDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderOfferDetail(detail), "")
}

// Create handles creating a new offer with its three pricing tiers.
func (h *OfferHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	details := make([]usecase.OfferDetailInput, 0, len(req.Details))
	for _, detail := range req.Details {
		details = append(details, usecase.OfferDetailInput{
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           detail.Features,
			OfferType:          entity.OfferType(detail.OfferType),
		})
	}

	offer, err := h.offerUC.Create(c.Request().Context(), actor, usecase.CreateOfferInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Details:     details,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, renderOfferWrite(offer), "Offer created")
}

// Update handles a partial offer update by its owner.
func (h *OfferHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	var req UpdateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	patches := make([]usecase.OfferDetailPatch, 0, len(req.Details))
	for _, patch := range req.Details {
		patches = append(patches, usecase.OfferDetailPatch{
			OfferType:          entity.OfferType(patch.OfferType),
			Title:              patch.Title,
			Revisions:          patch.Revisions,
			DeliveryTimeInDays: patch.DeliveryTimeInDays,
			Price:              patch.Price,
			Features:           patch.Features,
		})
	}

	offer, err := h.offerUC.Update(c.Request().Context(), actor, id, usecase.UpdateOfferInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Details:     patches,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderOfferWrite(offer), "Offer updated")
}

// Delete handles deleting an offer by its owner.
func (h *OfferHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	if err := h.offerUC.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseListQuery extracts the listing's filter, ordering and pagination inputs.
// Unparseable numeric filters write a 400 and report false; an unknown ordering
// value passes through untouched and the repository ignores it.
func (h *OfferHandler) parseListQuery(c echo.Context) (usecase.ListOffersQuery, bool) {
	query := usecase.ListOffersQuery{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
		Page:     1,
		PageSize: h.cfg.Pagination.DefaultPageSize,
	}

	if raw := c.QueryParam("creator_id"); raw != "" {
		creatorID, err := uuid.Parse(raw)
		if err != nil {
			_ = response.BadRequest(c, "INVALID_FILTER", "Invalid creator_id filter")

			return query, false
		}
		query.CreatorID = &creatorID
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			_ = response.BadRequest(c, "INVALID_FILTER", "Invalid min_price filter")

			return query, false
		}
		query.MinPrice = &minPrice
	}
	if raw := c.QueryParam("max_delivery_time"); raw != "" {
		maxDelivery, err := strconv.Atoi(raw)
		if err != nil {
			_ = response.BadRequest(c, "INVALID_FILTER", "Invalid max_delivery_time filter")

			return query, false
		}
		query.MaxDeliveryTime = &maxDelivery
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			_ = response.BadRequest(c, "INVALID_FILTER", "Invalid page parameter")

			return query, false
		}
		query.Page = page
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			_ = response.BadRequest(c, "INVALID_FILTER", "Invalid page_size parameter")

			return query, false
		}
		if pageSize > h.cfg.Pagination.MaxPageSize {
			pageSize = h.cfg.Pagination.MaxPageSize
		}
		query.PageSize = pageSize
	}

	return query, true
}
