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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create snapshots the chosen tier into a new order. The tier lookup and the
// insert run in one transaction so the copied values match what the customer saw.
func (srv *orderService) Create(ctx context.Context, actor usecase.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	if !actor.IsCustomer() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only customers may place orders")
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		detail, err := offerRepo.FindDetailByID(ctx, input.OfferDetailID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return domainerrors.ErrOfferDetailNotFound
			}

			return errors.Wrap(err, "failed to find ordered offer detail")
		}

		offer, err := offerRepo.FindByID(ctx, detail.OfferID)
		if err != nil {
			return errors.Wrap(err, "failed to find ordered offer")
		}

		order := entity.NewOrderFromDetail(actor.ID, offer.UserID, detail)
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return err
		}
		created = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", created.ID.String()),
		slog.String("customerID", actor.ID.String()),
		slog.String("businessID", created.BusinessUserID.String()),
	)

	return created, nil
}

// List retrieves all orders the actor participates in.
func (srv *orderService) List(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByParticipant(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus changes an order's status. Only the business side of the order may do this.
func (srv *orderService) UpdateStatus(ctx context.Context, actor usecase.Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithFieldDetail("status", "狀態必須是 in_progress、completed 或 cancelled")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.BusinessUserID != actor.ID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the business side may change the order status")
	}

	updated, err := srv.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", id.String()),
		slog.Any("status", status),
	)

	return updated, nil
}

// Delete removes an order. Staff only.
func (srv *orderService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsStaff {
		return domainerrors.ErrForbidden.WrapMessage("only staff may delete orders")
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	srv.log(ctx).Info("Order deleted", slog.String("orderID", id.String()))

	return nil
}

// CountInProgress counts a business user's in-progress orders.
func (srv *orderService) CountInProgress(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	return srv.countForBusiness(ctx, businessUserID, entity.OrderStatusInProgress)
}

// CountCompleted counts a business user's completed orders.
func (srv *orderService) CountCompleted(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	return srv.countForBusiness(ctx, businessUserID, entity.OrderStatusCompleted)
}

// countForBusiness verifies the target really is a business user before
// counting, so a bad ID answers not-found instead of zero.
func (srv *orderService) countForBusiness(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	user, err := srv.userRepo.FindByID(ctx, businessUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, domainerrors.ErrBusinessUserNotFound
		}

		return 0, errors.Wrap(err, "failed to find business user")
	}
	if !user.IsBusiness() {
		return 0, domainerrors.ErrBusinessUserNotFound
	}

	count, err := srv.orderRepo.CountByBusinessAndStatus(ctx, businessUserID, status)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}
