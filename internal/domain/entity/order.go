package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	// OrderStatusInProgress is the initial status of every order.
	OrderStatusInProgress OrderStatus = "in_progress"
	// OrderStatusCompleted marks an order as fulfilled.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled marks an order as cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a customer's purchase of one offer tier. The pricing fields are a
// point-in-time copy of the tier taken at creation; they are never re-derived
// when the source offer changes. The back-references to the source offer and
// detail are informational only and become nil when the source is deleted.
type Order struct {
	ID                 uuid.UUID   // The unique ID of the order.
	CustomerUserID     uuid.UUID   // The buying customer.
	BusinessUserID     uuid.UUID   // The selling business, derived from the offer owner at creation.
	OfferID            *uuid.UUID  // Back-reference to the source offer, nil once it is deleted.
	OfferDetailID      *uuid.UUID  // Back-reference to the source tier, nil once it is deleted.
	Title              string      // Snapshot of the tier title.
	Revisions          int         // Snapshot of the included revisions.
	DeliveryTimeInDays int         // Snapshot of the promised delivery time.
	Price              float64     // Snapshot of the tier price.
	Features           []string    // Snapshot of the tier features.
	OfferType          OfferType   // Snapshot of the tier slot.
	Status             OrderStatus // Fulfilment state, the only mutable field.
	CreatedAt          time.Time   // Timestamp of when the order was placed.
	UpdatedAt          time.Time   // Timestamp of the last status change.
}

// NewOrderFromDetail builds an in_progress order snapshotting the given tier.
// The business user is always taken from the offer owner, never from a caller.
func NewOrderFromDetail(customerUserID, businessUserID uuid.UUID, detail *OfferDetail) *Order {
	offerID := detail.OfferID
	detailID := detail.ID

	return &Order{
		CustomerUserID:     customerUserID,
		BusinessUserID:     businessUserID,
		OfferID:            &offerID,
		OfferDetailID:      &detailID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           slices.Clone(detail.Features),
		OfferType:          detail.OfferType,
		Status:             OrderStatusInProgress,
	}
}

// IsParticipant reports whether the given user is the customer or the
// business side of the order.
func (o *Order) IsParticipant(userID uuid.UUID) bool {
	return o.CustomerUserID == userID || o.BusinessUserID == userID
}
