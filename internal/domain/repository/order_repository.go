package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByParticipant retrieves all orders where the user is either the
	// customer or the business side.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus changes the status of an order and returns the updated row.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// Delete removes an order.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByBusinessAndStatus counts the orders of a business user in the
	// given status.
	CountByBusinessAndStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}
