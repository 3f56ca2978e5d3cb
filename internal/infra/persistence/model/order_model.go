package model

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. OfferID and OfferDetailID are nullable
// back-references kept for traceability only: deleting the offer sets them to
// NULL while the copied snapshot columns stay intact.
type OrderModel struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerUserID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	BusinessUserID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	OfferID            *uuid.UUID                  `gorm:"type:uuid"`
	OfferDetailID      *uuid.UUID                  `gorm:"type:uuid"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Revisions          int                         `gorm:"not null"`
	DeliveryTimeInDays int                         `gorm:"not null"`
	Price              float64                     `gorm:"type:numeric(10,2);not null"`
	Features           datatypes.JSONSlice[string] `gorm:"not null"`
	OfferType          string                      `gorm:"type:varchar(20);not null"`
	Status             string                      `gorm:"type:varchar(20);not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Customer *UserModel        `gorm:"foreignKey:CustomerUserID;constraint:OnDelete:CASCADE"`
	Business *UserModel        `gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
	Offer    *OfferModel       `gorm:"foreignKey:OfferID;constraint:OnDelete:SET NULL"`
	Detail   *OfferDetailModel `gorm:"foreignKey:OfferDetailID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ToOrderDomain converts a GORM OrderModel to a domain Order entity.
func ToOrderDomain(data *OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                 data.ID,
		CustomerUserID:     data.CustomerUserID,
		BusinessUserID:     data.BusinessUserID,
		OfferID:            data.OfferID,
		OfferDetailID:      data.OfferDetailID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           []string(data.Features),
		OfferType:          entity.OfferType(data.OfferType),
		Status:             entity.OrderStatus(data.Status),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// FromOrderDomain converts a domain Order entity to a GORM OrderModel.
func FromOrderDomain(data *entity.Order) *OrderModel {
	if data == nil {
		return nil
	}

	return &OrderModel{
		ID:                 data.ID,
		CustomerUserID:     data.CustomerUserID,
		BusinessUserID:     data.BusinessUserID,
		OfferID:            data.OfferID,
		OfferDetailID:      data.OfferDetailID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           datatypes.NewJSONSlice(data.Features),
		OfferType:          data.OfferType.String(),
		Status:             data.Status.String(),
	}
}
