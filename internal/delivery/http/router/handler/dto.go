package handler

import (
	"path"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferDetailResponse is the full rendering of one pricing tier.
type OfferDetailResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
}

// OfferDetailStub is the link-only rendering used on offer listings.
type OfferDetailStub struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// OwnerSnapshot is the denormalized owner identity on offer listings.
type OwnerSnapshot struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// OfferListItem renders one offer on the listing, with derived aggregates.
type OfferListItem struct {
	ID              uuid.UUID         `json:"id"`
	User            uuid.UUID         `json:"user"`
	Title           string            `json:"title"`
	Image           string            `json:"image"`
	Description     string            `json:"description"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Details         []OfferDetailStub `json:"details"`
	MinPrice        float64           `json:"min_price"`
	MinDeliveryTime int               `json:"min_delivery_time"`
	UserDetails     *OwnerSnapshot    `json:"user_details,omitempty"`
}

// OfferPageResponse is the paginated listing envelope.
type OfferPageResponse struct {
	Count   int64           `json:"count"`
	Results []OfferListItem `json:"results"`
}

// OfferWriteResponse renders an offer after create or update, with full details.
type OfferWriteResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Image       string                `json:"image"`
	Description string                `json:"description"`
	Details     []OfferDetailResponse `json:"details"`
}

// OrderResponse renders one order snapshot.
type OrderResponse struct {
	ID                 uuid.UUID `json:"id"`
	CustomerUser       uuid.UUID `json:"customer_user"`
	BusinessUser       uuid.UUID `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ReviewResponse renders one review.
type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessUser uuid.UUID `json:"business_user"`
	Reviewer     uuid.UUID `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileResponse renders a profile with its owner's identity fields.
type ProfileResponse struct {
	User         uuid.UUID `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthResponse renders the outcome of registration and login.
type AuthResponse struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	UserID   uuid.UUID `json:"user_id"`
}

func renderOfferDetail(detail *entity.OfferDetail) OfferDetailResponse {
	features := detail.Features
	if features == nil {
		features = []string{}
	}

	return OfferDetailResponse{
		ID:                 detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           features,
		OfferType:          detail.OfferType.String(),
	}
}

func renderOfferListItem(offer *entity.Offer, withOwner bool) OfferListItem {
	stubs := make([]OfferDetailStub, 0, len(offer.Details))
	for _, detail := range offer.Details {
		stubs = append(stubs, OfferDetailStub{
			ID:  detail.ID,
			URL: "/api/offerdetails/" + detail.ID.String() + "/",
		})
	}

	item := OfferListItem{
		ID:              offer.ID,
		User:            offer.UserID,
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
		Details:         stubs,
		MinPrice:        offer.MinPrice(),
		MinDeliveryTime: offer.MinDeliveryTime(),
	}
	if withOwner && offer.Owner != nil {
		item.UserDetails = &OwnerSnapshot{
			FirstName: offer.Owner.FirstName,
			LastName:  offer.Owner.LastName,
			Username:  offer.Owner.Username,
		}
	}

	return item
}

func renderOfferWrite(offer *entity.Offer) OfferWriteResponse {
	details := make([]OfferDetailResponse, 0, len(offer.Details))
	for _, detail := range offer.Details {
		details = append(details, renderOfferDetail(detail))
	}

	return OfferWriteResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Image:       offer.Image,
		Description: offer.Description,
		Details:     details,
	}
}

func renderOrder(order *entity.Order) OrderResponse {
	features := order.Features
	if features == nil {
		features = []string{}
	}

	return OrderResponse{
		ID:                 order.ID,
		CustomerUser:       order.CustomerUserID,
		BusinessUser:       order.BusinessUserID,
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           features,
		OfferType:          order.OfferType.String(),
		Status:             order.Status.String(),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func renderReview(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		BusinessUser: review.BusinessUserID,
		Reviewer:     review.ReviewerID,
		Rating:       review.Rating,
		Description:  review.Description,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}

// renderProfile maps a user and their profile onto the wire shape. The stored
// file reference may carry a directory prefix; only the base name is exposed.
func renderProfile(user *entity.User, withEmail bool) ProfileResponse {
	resp := ProfileResponse{
		User:      user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if user.Profile != nil {
		resp.Location = user.Profile.Location
		resp.Tel = user.Profile.Tel
		resp.Description = user.Profile.Description
		resp.WorkingHours = user.Profile.WorkingHours
		resp.Type = user.Profile.Type.String()
		resp.CreatedAt = user.Profile.CreatedAt
		if user.Profile.File != "" {
			resp.File = path.Base(user.Profile.File)
		}
	}
	if withEmail {
		resp.Email = user.Email
	}

	return resp
}
