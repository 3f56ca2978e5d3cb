package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OfferDetailInput defines one pricing tier of a new offer.
type OfferDetailInput struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              float64
	Features           []string
	OfferType          entity.OfferType
}

// CreateOfferInput defines the data required to create an offer. Details must
// contain exactly one tier per offer type.
type CreateOfferInput struct {
	Title       string
	Image       string
	Description string
	Details     []OfferDetailInput
}

// OfferDetailPatch carries a partial update of one tier. OfferType selects the
// tier; nil fields stay unchanged.
type OfferDetailPatch struct {
	OfferType          entity.OfferType
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *float64
	Features           *[]string
}

// UpdateOfferInput carries a partial update of an offer and any of its tiers.
type UpdateOfferInput struct {
	Title       *string
	Image       *string
	Description *string
	Details     []OfferDetailPatch
}

// ListOffersQuery mirrors the listing's filter, search, ordering and
// pagination surface.
type ListOffersQuery struct {
	CreatorID       *uuid.UUID
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

// --- Output DTOs ---

// OfferPage is one page of the offer listing.
type OfferPage struct {
	Count   int64
	Results []*entity.Offer
}

// OfferUsecase defines the interface for offer-related business operations.
type OfferUsecase interface {
	// List retrieves one page of offers. Open to unauthenticated callers.
	List(ctx context.Context, query ListOffersQuery) (*OfferPage, error)

	// Get retrieves a single offer with details and owner.
	Get(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// GetDetail retrieves a single pricing tier.
	GetDetail(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// Create makes a new offer owned by the acting business user.
	Create(ctx context.Context, actor Actor, input CreateOfferInput) (*entity.Offer, error)

	// Update applies a partial update. Only the owner may modify an offer.
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateOfferInput) (*entity.Offer, error)

	// Delete removes an offer. Only the owner may delete it.
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// ToRepositoryQuery maps the listing DTO onto the repository's query type.
func (q ListOffersQuery) ToRepositoryQuery() repository.OfferQuery {
	return repository.OfferQuery{
		CreatorID:       q.CreatorID,
		MinPrice:        q.MinPrice,
		MaxDeliveryTime: q.MaxDeliveryTime,
		Search:          q.Search,
		Ordering:        q.Ordering,
		Page:            q.Page,
		PageSize:        q.PageSize,
	}
}
