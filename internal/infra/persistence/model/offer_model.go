package model

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Image       string    `gorm:"type:varchar(255);not null;default:''"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"index"`

	User    *UserModel          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Details []*OfferDetailModel `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferDetailModel mirrors the 'offer_details' table. The (offer_id, offer_type)
// pair is unique: an offer carries at most one detail per pricing tier.
type OfferDetailModel struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OfferID            uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_offer_details_offer_type"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Revisions          int                         `gorm:"not null"`
	DeliveryTimeInDays int                         `gorm:"not null"`
	Price              float64                     `gorm:"type:numeric(10,2);not null"`
	Features           datatypes.JSONSlice[string] `gorm:"not null"`
	OfferType          string                      `gorm:"type:varchar(20);not null;uniqueIndex:idx_offer_details_offer_type"`
}

// TableName explicitly sets the table name for GORM.
func (OfferDetailModel) TableName() string {
	return "offer_details"
}

// ToOfferDomain converts a GORM OfferModel to a domain Offer entity.
func ToOfferDomain(data *OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	details := make([]*entity.OfferDetail, 0, len(data.Details))
	for _, detail := range data.Details {
		details = append(details, ToOfferDetailDomain(detail))
	}

	return &entity.Offer{
		ID:          data.ID,
		UserID:      data.UserID,
		Owner:       ToUserDomain(data.User),
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// FromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func FromOfferDomain(data *entity.Offer) *OfferModel {
	if data == nil {
		return nil
	}

	details := make([]*OfferDetailModel, 0, len(data.Details))
	for _, detail := range data.Details {
		details = append(details, FromOfferDetailDomain(detail))
	}

	return &OfferModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		Details:     details,
	}
}

// ToOfferDetailDomain converts a GORM OfferDetailModel to a domain OfferDetail.
func ToOfferDetailDomain(data *OfferDetailModel) *entity.OfferDetail {
	if data == nil {
		return nil
	}

	return &entity.OfferDetail{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           []string(data.Features),
		OfferType:          entity.OfferType(data.OfferType),
	}
}

// FromOfferDetailDomain converts a domain OfferDetail to a GORM OfferDetailModel.
func FromOfferDetailDomain(data *entity.OfferDetail) *OfferDetailModel {
	if data == nil {
		return nil
	}

	return &OfferDetailModel{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           datatypes.NewJSONSlice(data.Features),
		OfferType:          data.OfferType.String(),
	}
}
