package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput names the pricing tier the acting customer is ordering.
type CreateOrderInput struct {
	OfferDetailID uuid.UUID
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// Create snapshots the chosen tier into a new order between the acting
	// customer and the offer's owner.
	Create(ctx context.Context, actor Actor, input CreateOrderInput) (*entity.Order, error)

	// List retrieves all orders the actor participates in.
	List(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// UpdateStatus changes an order's status. Only the business side of the
	// order may do this.
	UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// Delete removes an order. Staff only.
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error

	// CountInProgress counts a business user's in-progress orders.
	CountInProgress(ctx context.Context, businessUserID uuid.UUID) (int64, error)

	// CountCompleted counts a business user's completed orders.
	CountCompleted(ctx context.Context, businessUserID uuid.UUID) (int64, error)
}
