package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents the request body for a profile patch.
// Pointer fields distinguish "not sent" from "clear this field".
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Location     *string `json:"location"`
	Tel          *string `json:"tel"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
	File         *string `json:"file"`
}

// Get handles retrieving a single profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	user, err := h.profileUC.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderProfile(user, true), "")
}

// Update handles a partial profile update by its owner.
func (h *ProfileHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.profileUC.Update(c.Request().Context(), actor, userID, usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Location:     req.Location,
		Tel:          req.Tel,
		Description:  req.Description,
		WorkingHours: req.WorkingHours,
		File:         req.File,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderProfile(user, true), "Profile updated")
}

// ListBusiness handles listing all business profiles.
func (h *ProfileHandler) ListBusiness(c echo.Context) error {
	return h.listByRole(c, entity.RoleBusiness)
}

// ListCustomer handles listing all customer profiles.
func (h *ProfileHandler) ListCustomer(c echo.Context) error {
	return h.listByRole(c, entity.RoleCustomer)
}

func (h *ProfileHandler) listByRole(c echo.Context, role entity.Role) error {
	users, err := h.profileUC.ListByRole(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	profiles := make([]ProfileResponse, 0, len(users))
	for _, user := range users {
		// Listings omit the email address.
		profiles = append(profiles, renderProfile(user, false))
	}

	return response.Success(c, http.StatusOK, profiles, "")
}
