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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func (fx orderServiceFixtures) onExecute(t *testing.T, ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestOrderService_Create_SnapshotsTier(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	ownerID := uuid.New()
	offer := threeTierOffer(ownerID)
	detail := offer.Detail(entity.OfferTypeStandard)

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		txOfferRepo := mockRepo.NewMockOfferRepository(t)
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OfferRepo().Return(txOfferRepo)
		factory.EXPECT().OrderRepo().Return(txOrderRepo)

		txOfferRepo.EXPECT().FindDetailByID(ctx, detail.ID).Return(detail, nil)
		txOfferRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

		txOrderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
	})

	order, err := fx.service.Create(ctx, actor, usecase.CreateOrderInput{OfferDetailID: detail.ID})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, actor.ID, order.CustomerUserID)
	assert.Equal(t, ownerID, order.BusinessUserID)
	assert.Equal(t, detail.Title, order.Title)
	assert.Equal(t, detail.Price, order.Price)
	assert.Equal(t, detail.Revisions, order.Revisions)
	assert.Equal(t, detail.DeliveryTimeInDays, order.DeliveryTimeInDays)
	assert.Equal(t, entity.OfferTypeStandard, order.OfferType)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	require.NotNil(t, order.OfferID)
	assert.Equal(t, offer.ID, *order.OfferID)
	require.NotNil(t, order.OfferDetailID)
	assert.Equal(t, detail.ID, *order.OfferDetailID)
}

func TestOrderService_Create_BusinessForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	order, err := fx.service.Create(ctx, businessActor(), usecase.CreateOrderInput{OfferDetailID: uuid.New()})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_Create_DetailNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	detailID := uuid.New()

	fx.onExecute(t, ctx, domainerrors.ErrOfferDetailNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		txOfferRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(txOfferRepo)

		txOfferRepo.EXPECT().
			FindDetailByID(ctx, detailID).
			Return(nil, repository.ErrOfferDetailNotFound)
	})

	order, err := fx.service.Create(ctx, customerActor(), usecase.CreateOrderInput{OfferDetailID: detailID})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferDetailNotFound))
}

func TestOrderService_UpdateStatus_BusinessSide(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	business := businessActor()
	orderID := uuid.New()
	order := &entity.Order{
		ID:             orderID,
		CustomerUserID: uuid.New(),
		BusinessUserID: business.ID,
		Status:         entity.OrderStatusInProgress,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCompleted).
		Return(&entity.Order{ID: orderID, BusinessUserID: business.ID, Status: entity.OrderStatusCompleted}, nil)

	updated, err := fx.service.UpdateStatus(ctx, business, orderID, entity.OrderStatusCompleted)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)
}

func TestOrderService_UpdateStatus_CustomerForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customer := customerActor()
	orderID := uuid.New()
	order := &entity.Order{
		ID:             orderID,
		CustomerUserID: customer.ID,
		BusinessUserID: uuid.New(),
		Status:         entity.OrderStatusInProgress,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	updated, err := fx.service.UpdateStatus(ctx, customer, orderID, entity.OrderStatusCancelled)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	updated, err := fx.service.UpdateStatus(ctx, businessActor(), uuid.New(), entity.OrderStatus("paused"))

	assert.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_Delete_StaffOnly(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	staff := usecase.Actor{ID: uuid.New(), Role: entity.RoleCustomer, IsStaff: true}

	fx.orderRepo.EXPECT().Delete(ctx, orderID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, staff, orderID))
}

func TestOrderService_Delete_NonStaffForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	err := fx.service.Delete(ctx, customerActor(), uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_CountInProgress_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	businessUserID := uuid.New()
	business := &entity.User{
		ID:      businessUserID,
		Profile: &entity.Profile{Type: entity.RoleBusiness},
	}

	fx.userRepo.EXPECT().FindByID(ctx, businessUserID).Return(business, nil)
	fx.orderRepo.EXPECT().
		CountByBusinessAndStatus(ctx, businessUserID, entity.OrderStatusInProgress).
		Return(int64(4), nil)

	count, err := fx.service.CountInProgress(ctx, businessUserID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestOrderService_CountCompleted_TargetIsCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	targetID := uuid.New()
	target := &entity.User{
		ID:      targetID,
		Profile: &entity.Profile{Type: entity.RoleCustomer},
	}

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)

	count, err := fx.service.CountCompleted(ctx, targetID)

	assert.Error(t, err)
	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessUserNotFound))
}

func TestOrderService_CountCompleted_UnknownUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	targetID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)

	count, err := fx.service.CountCompleted(ctx, targetID)

	assert.Error(t, err)
	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessUserNotFound))
}

func TestOrderService_List_ParticipantScoped(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	orders := []*entity.Order{
		{ID: uuid.New(), CustomerUserID: actor.ID, Status: entity.OrderStatusInProgress},
	}

	fx.orderRepo.EXPECT().ListByParticipant(ctx, actor.ID).Return(orders, nil)

	listed, err := fx.service.List(ctx, actor)

	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
