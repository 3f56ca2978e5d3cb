package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	offerRepo repository.OfferRepository
	logger    *slog.Logger
}

// OfferServiceParams holds dependencies for offerService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	OfferRepo repository.OfferRepository
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		offerRepo: params.OfferRepo,
		logger:    params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves one page of offers matching the query.
func (srv *offerService) List(ctx context.Context, query usecase.ListOffersQuery) (*usecase.OfferPage, error) {
	offers, total, err := srv.offerRepo.List(ctx, query.ToRepositoryQuery())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return &usecase.OfferPage{
		Count:   total,
		Results: offers,
	}, nil
}

// Get retrieves a single offer with details and owner.
func (srv *offerService) Get(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// GetDetail retrieves a single pricing tier.
func (srv *offerService) GetDetail(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	detail, err := srv.offerRepo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferDetailNotFound) {
			return nil, domainerrors.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail")
	}

	return detail, nil
}

// Create makes a new offer owned by the acting business user.
func (srv *offerService) Create(ctx context.Context, actor usecase.Actor, input usecase.CreateOfferInput) (*entity.Offer, error) {
	if !actor.IsBusiness() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only business users may create offers")
	}
	if err := validateDetailInputs(input.Details); err != nil {
		return nil, err
	}

	details := make([]*entity.OfferDetail, 0, len(input.Details))
	for _, in := range input.Details {
		details = append(details, &entity.OfferDetail{
			Title:              in.Title,
			Revisions:          in.Revisions,
			DeliveryTimeInDays: in.DeliveryTimeInDays,
			Price:              in.Price,
			Features:           in.Features,
			OfferType:          in.OfferType,
		})
	}

	offer := &entity.Offer{
		UserID:      actor.ID,
		Title:       input.Title,
		Image:       input.Image,
		Description: input.Description,
		Details:     details,
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Offer created",
		slog.String("offerID", offer.ID.String()),
		slog.String("ownerID", actor.ID.String()),
	)

	return offer, nil
}

// Update applies a partial update. Only the owner may modify an offer.
func (srv *offerService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateOfferInput) (*entity.Offer, error) {
	offer, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.UserID != actor.ID {
		return nil, domainerrors.ErrForbidden.WrapMessage("offer belongs to another user")
	}

	if input.Title != nil {
		offer.Title = *input.Title
	}
	if input.Image != nil {
		offer.Image = *input.Image
	}
	if input.Description != nil {
		offer.Description = *input.Description
	}

	for _, patch := range input.Details {
		if !patch.OfferType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithFieldDetail("details", "每個方案層級都必須帶有有效的 offer_type")
		}
		detail := offer.Detail(patch.OfferType)
		if detail == nil {
			return nil, domainerrors.ErrValidationFailed.WithFieldDetail("details", "該服務方案沒有此層級")
		}

		if patch.Title != nil {
			detail.Title = *patch.Title
		}
		if patch.Revisions != nil {
			detail.Revisions = *patch.Revisions
		}
		if patch.DeliveryTimeInDays != nil {
			detail.DeliveryTimeInDays = *patch.DeliveryTimeInDays
		}
		if patch.Price != nil {
			detail.Price = *patch.Price
		}
		if patch.Features != nil {
			detail.Features = *patch.Features
		}
		if err := validateDetailValues(detail.Revisions, detail.DeliveryTimeInDays, detail.Price); err != nil {
			return nil, err
		}
	}

	if err := srv.offerRepo.Save(ctx, offer); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Offer updated", slog.String("offerID", id.String()))

	return srv.Get(ctx, id)
}

// Delete removes an offer. Only the owner may delete it.
func (srv *offerService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	offer, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}
	if offer.UserID != actor.ID {
		return domainerrors.ErrForbidden.WrapMessage("offer belongs to another user")
	}

	if err := srv.offerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return domainerrors.ErrOfferNotFound
		}

		return err
	}

	srv.log(ctx).Info("Offer deleted", slog.String("offerID", id.String()))

	return nil
}

// validateDetailInputs enforces the creation invariant: exactly one detail per
// pricing tier, with sane numeric values.
func validateDetailInputs(details []usecase.OfferDetailInput) error {
	if len(details) != entity.RequiredDetailCount {
		return domainerrors.ErrValidationFailed.WithFieldDetail("details", "服務方案必須包含三個層級")
	}

	seen := make(map[entity.OfferType]bool, entity.RequiredDetailCount)
	for _, detail := range details {
		if !detail.OfferType.IsValid() {
			return domainerrors.ErrValidationFailed.WithFieldDetail("details", "offer_type 必須是 basic、standard 或 premium")
		}
		if seen[detail.OfferType] {
			return domainerrors.ErrValidationFailed.WithFieldDetail("details", "basic、standard、premium 三個層級各只能出現一次")
		}
		seen[detail.OfferType] = true

		if err := validateDetailValues(detail.Revisions, detail.DeliveryTimeInDays, detail.Price); err != nil {
			return err
		}
	}

	return nil
}

// validateDetailValues checks the numeric bounds shared by create and update.
// Revisions of -1 means unlimited.
func validateDetailValues(revisions, deliveryTimeInDays int, price float64) error {
	if revisions < entity.UnlimitedRevisions {
		return domainerrors.ErrValidationFailed.WithFieldDetail("revisions", "修改次數最小值為 -1")
	}
	if deliveryTimeInDays <= 0 {
		return domainerrors.ErrValidationFailed.WithFieldDetail("delivery_time_in_days", "交付天數必須為正數")
	}
	if price < 0 {
		return domainerrors.ErrValidationFailed.WithFieldDetail("price", "價格不可為負數")
	}

	return nil
}
