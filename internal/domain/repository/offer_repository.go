package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOfferNotFound is returned when an offer does not exist.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrOfferDetailNotFound is returned when an offer detail does not exist.
	ErrOfferDetailNotFound = errors.New("offer detail not found")
)

// Offer listing ordering values accepted by OfferQuery. Any other value is
// ignored and the store's default order is kept.
const (
	OfferOrderUpdatedAtAsc  = "updated_at"
	OfferOrderUpdatedAtDesc = "-updated_at"
	OfferOrderMinPriceAsc   = "min_price"
	OfferOrderMinPriceDesc  = "-min_price"
)

// OfferQuery describes the filter, search, ordering and pagination inputs of
// the offer listing. All filters combine with AND semantics. The price and
// delivery filters apply to the aggregates computed over the offer's details,
// not to any single tier.
type OfferQuery struct {
	CreatorID       *uuid.UUID
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

// OfferRepository defines the operations for offer and offer-detail persistence.
type OfferRepository interface {
	// List retrieves one page of offers matching the query, with details and
	// owner preloaded, plus the total match count before pagination.
	List(ctx context.Context, query OfferQuery) ([]*entity.Offer, int64, error)

	// FindByID retrieves a single offer with its details and owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindDetailByID retrieves a single offer detail.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// Create persists a new offer together with all of its details.
	Create(ctx context.Context, offer *entity.Offer) error

	// Save writes back a mutated offer including its details.
	Save(ctx context.Context, offer *entity.Offer) error

	// Delete removes an offer. The store cascades to its details and nulls
	// order back-references.
	Delete(ctx context.Context, id uuid.UUID) error
}
