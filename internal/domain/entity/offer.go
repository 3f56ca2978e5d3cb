package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferType identifies one of the three pricing tiers of an offer.
type OfferType string

const (
	// OfferTypeBasic is the entry tier of an offer.
	OfferTypeBasic OfferType = "basic"
	// OfferTypeStandard is the middle tier of an offer.
	OfferTypeStandard OfferType = "standard"
	// OfferTypePremium is the top tier of an offer.
	OfferTypePremium OfferType = "premium"
)

// RequiredDetailCount is the number of detail tiers every offer must own.
const RequiredDetailCount = 3

// UnlimitedRevisions is the sentinel value for a tier offering unlimited revisions.
const UnlimitedRevisions = -1

// String returns the string representation of the OfferType.
func (t OfferType) String() string {
	return string(t)
}

// IsValid checks if the OfferType is a valid value.
func (t OfferType) IsValid() bool {
	switch t {
	case OfferTypeBasic, OfferTypeStandard, OfferTypePremium:
		return true
	default:
		return false
	}
}

// Offer is a business user's service listing. A persisted offer always owns
// exactly three details with pairwise-distinct offer types.
type Offer struct {
	ID          uuid.UUID      // The unique ID of the offer.
	UserID      uuid.UUID      // The owning business user.
	Owner       *User          // The owning user, loaded for output projections. May be nil.
	Title       string         // The listing title.
	Image       string         // Stored blob key of the offer image, "" when none was uploaded.
	Description string         // The listing description.
	Details     []*OfferDetail // The three pricing tiers of the offer.
	CreatedAt   time.Time      // Timestamp of when the offer was created.
	UpdatedAt   time.Time      // Refreshed on every mutation of the offer or its details.
}

// Detail returns the tier with the given offer type, or nil when the
// offer holds no such tier.
func (o *Offer) Detail(offerType OfferType) *OfferDetail {
	for _, detail := range o.Details {
		if detail.OfferType == offerType {
			return detail
		}
	}

	return nil
}

// MinPrice returns the minimum price across the loaded details.
// It is recomputed on every call rather than stored.
func (o *Offer) MinPrice() float64 {
	var minPrice float64
	for i, detail := range o.Details {
		if i == 0 || detail.Price < minPrice {
			minPrice = detail.Price
		}
	}

	return minPrice
}

// MinDeliveryTime returns the minimum delivery time in days across the
// loaded details. It is recomputed on every call rather than stored.
func (o *Offer) MinDeliveryTime() int {
	var minDays int
	for i, detail := range o.Details {
		if i == 0 || detail.DeliveryTimeInDays < minDays {
			minDays = detail.DeliveryTimeInDays
		}
	}

	return minDays
}

// OfferDetail is one priced tier of an offer.
type OfferDetail struct {
	ID                 uuid.UUID // The unique ID of the detail.
	OfferID            uuid.UUID // The parent offer.
	Title              string    // The tier title.
	Revisions          int       // Included revisions; UnlimitedRevisions means no limit.
	DeliveryTimeInDays int       // Promised delivery time, always positive.
	Price              float64   // Tier price, never negative.
	Features           []string  // Ordered list of included features.
	OfferType          OfferType // The tier slot. Unique within one offer.
}
