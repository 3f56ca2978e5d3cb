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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	OfferDetailID uuid.UUID `json:"offer_detail_id" validate:"required"`
}

// UpdateOrderRequest represents the request body for an order status patch.
// Status is the only mutable field on an order.
type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles placing an order for a pricing tier.
func (h *OrderHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orderUC.Create(c.Request().Context(), actor, usecase.CreateOrderInput{
		OfferDetailID: req.OfferDetailID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, renderOrder(order), "Order created")
}

// List handles listing the caller's orders.
func (h *OrderHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		results = append(results, renderOrder(order))
	}

	return response.Success(c, http.StatusOK, results, "")
}

// UpdateStatus handles the status-only order patch.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), actor, id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderOrder(order), "Order updated")
}

// Delete handles the staff-only order delete.
func (h *OrderHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CountInProgress handles counting a business user's in-progress orders.
func (h *OrderHandler) CountInProgress(c echo.Context) error {
	businessUserID, err := uuid.Parse(c.Param("business_user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business user ID")
	}

	count, err := h.orderUC.CountInProgress(c.Request().Context(), businessUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{
		"order_count": count,
	}, "")
}

// CountCompleted handles counting a business user's completed orders.
func (h *OrderHandler) CountCompleted(c echo.Context) error {
	businessUserID, err := uuid.Parse(c.Param("business_user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business user ID")
	}

	count, err := h.orderUC.CountCompleted(c.Request().Context(), businessUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{
		"completed_order_count": count,
	}, "")
}
