package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// offerServiceFixtures holds all test dependencies for offer service tests.
type offerServiceFixtures struct {
	service   usecase.OfferUsecase
	offerRepo *mockRepo.MockOfferRepository
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOfferService(OfferServiceParams{
		OfferRepo: offerRepo,
		Logger:    logger,
	})

	return offerServiceFixtures{
		service:   service,
		offerRepo: offerRepo,
	}
}

func businessActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Role: entity.RoleBusiness}
}

func customerActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Role: entity.RoleCustomer}
}

// threeTierInput returns a well-formed detail set covering every tier once.
func threeTierInput() []usecase.OfferDetailInput {
	return []usecase.OfferDetailInput{
		{Title: "Portrait sketch", Revisions: 1, DeliveryTimeInDays: 3, Price: 20, Features: []string{"one subject"}, OfferType: entity.OfferTypeBasic},
		{Title: "Inked portrait", Revisions: 3, DeliveryTimeInDays: 5, Price: 50, Features: []string{"one subject", "inked"}, OfferType: entity.OfferTypeStandard},
		{Title: "Full colour", Revisions: entity.UnlimitedRevisions, DeliveryTimeInDays: 10, Price: 120, Features: []string{"one subject", "inked", "coloured"}, OfferType: entity.OfferTypePremium},
	}
}

func threeTierOffer(ownerID uuid.UUID) *entity.Offer {
	offerID := uuid.New()

	return &entity.Offer{
		ID:     offerID,
		UserID: ownerID,
		Title:  "Portrait commissions",
		Details: []*entity.OfferDetail{
			{ID: uuid.New(), OfferID: offerID, Title: "Portrait sketch", Revisions: 1, DeliveryTimeInDays: 3, Price: 20, OfferType: entity.OfferTypeBasic},
			{ID: uuid.New(), OfferID: offerID, Title: "Inked portrait", Revisions: 3, DeliveryTimeInDays: 5, Price: 50, OfferType: entity.OfferTypeStandard},
			{ID: uuid.New(), OfferID: offerID, Title: "Full colour", Revisions: entity.UnlimitedRevisions, DeliveryTimeInDays: 10, Price: 120, OfferType: entity.OfferTypePremium},
		},
	}
}

func TestOfferService_Create_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := businessActor()
	input := usecase.CreateOfferInput{
		Title:       "Portrait commissions",
		Description: "Hand drawn portraits",
		Details:     threeTierInput(),
	}

	fx.offerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Offer")).
		Run(func(ctx context.Context, offer *entity.Offer) {
			offer.ID = uuid.New()
		}).
		Return(nil)

	offer, err := fx.service.Create(ctx, actor, input)

	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, actor.ID, offer.UserID)
	assert.Len(t, offer.Details, entity.RequiredDetailCount)
}

func TestOfferService_Create_CustomerForbidden(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	input := usecase.CreateOfferInput{Title: "Portrait commissions", Details: threeTierInput()}

	offer, err := fx.service.Create(ctx, customerActor(), input)

	assert.Error(t, err)
	assert.Nil(t, offer)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOfferService_Create_WrongTierCount(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	for _, count := range []int{0, 1, 2} {
		input := usecase.CreateOfferInput{
			Title:   "Portrait commissions",
			Details: threeTierInput()[:count],
		}

		offer, err := fx.service.Create(ctx, businessActor(), input)

		assert.Error(t, err)
		assert.Nil(t, offer)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestOfferService_Create_DuplicateTier(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	details := threeTierInput()
	details[2].OfferType = entity.OfferTypeBasic
	input := usecase.CreateOfferInput{Title: "Portrait commissions", Details: details}

	offer, err := fx.service.Create(ctx, businessActor(), input)

	assert.Error(t, err)
	assert.Nil(t, offer)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOfferService_Create_BadNumericValues(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(details []usecase.OfferDetailInput)
		field  string
	}{
		{
			name:   "revisions below unlimited sentinel",
			mutate: func(d []usecase.OfferDetailInput) { d[0].Revisions = -2 },
			field:  "revisions",
		},
		{
			name:   "zero delivery time",
			mutate: func(d []usecase.OfferDetailInput) { d[1].DeliveryTimeInDays = 0 },
			field:  "delivery_time_in_days",
		},
		{
			name:   "negative price",
			mutate: func(d []usecase.OfferDetailInput) { d[2].Price = -1 },
			field:  "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := threeTierInput()
			tt.mutate(details)

			offer, err := fx.service.Create(ctx, businessActor(), usecase.CreateOfferInput{
				Title:   "Portrait commissions",
				Details: details,
			})

			assert.Error(t, err)
			assert.Nil(t, offer)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.field)
		})
	}
}

func TestOfferService_Update_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := businessActor()
	offer := threeTierOffer(actor.ID)

	newTitle := "Portraits, now in colour"
	newPrice := 150.0
	input := usecase.UpdateOfferInput{
		Title: &newTitle,
		Details: []usecase.OfferDetailPatch{
			{OfferType: entity.OfferTypePremium, Price: &newPrice},
		},
	}

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil).Twice()
	fx.offerRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Offer")).
		Run(func(ctx context.Context, saved *entity.Offer) {
			assert.Equal(t, newTitle, saved.Title)
			assert.Equal(t, newPrice, saved.Detail(entity.OfferTypePremium).Price)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, actor, offer.ID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
}

func TestOfferService_Update_NotOwner(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offer := threeTierOffer(uuid.New())

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	newTitle := "Hijacked"
	updated, err := fx.service.Update(ctx, businessActor(), offer.ID, usecase.UpdateOfferInput{Title: &newTitle})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOfferService_Update_UnknownTier(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := businessActor()
	offer := threeTierOffer(actor.ID)
	// Strip the premium tier so the patch has nothing to land on.
	offer.Details = offer.Details[:2]

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	newPrice := 99.0
	updated, err := fx.service.Update(ctx, actor, offer.ID, usecase.UpdateOfferInput{
		Details: []usecase.OfferDetailPatch{
			{OfferType: entity.OfferTypePremium, Price: &newPrice},
		},
	})

	assert.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOfferService_Delete_Owner(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := businessActor()
	offer := threeTierOffer(actor.ID)

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	fx.offerRepo.EXPECT().Delete(ctx, offer.ID).Return(nil)

	err := fx.service.Delete(ctx, actor, offer.ID)

	require.NoError(t, err)
}

func TestOfferService_Delete_StaffNotOwner(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offer := threeTierOffer(uuid.New())
	staff := usecase.Actor{ID: uuid.New(), Role: entity.RoleCustomer, IsStaff: true}

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	err := fx.service.Delete(ctx, staff, offer.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOfferService_Delete_Stranger(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offer := threeTierOffer(uuid.New())

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	err := fx.service.Delete(ctx, businessActor(), offer.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOfferService_Get_NotFound(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.offerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOfferNotFound)

	offer, err := fx.service.Get(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, offer)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))
}

func TestOfferService_List_PassesQueryThrough(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	minPrice := 25.0
	query := usecase.ListOffersQuery{
		MinPrice: &minPrice,
		Search:   "portrait",
		Ordering: repository.OfferOrderMinPriceAsc,
		Page:     2,
		PageSize: 10,
	}

	offers := []*entity.Offer{threeTierOffer(uuid.New())}
	fx.offerRepo.EXPECT().
		List(ctx, query.ToRepositoryQuery()).
		Return(offers, int64(14), nil)

	page, err := fx.service.List(ctx, query)

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(14), page.Count)
	assert.Len(t, page.Results, 1)
}
