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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get retrieves the user owning the profile, including the profile itself.
func (srv *profileService) Get(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile owner")
	}
	if user.Profile == nil {
		return nil, domainerrors.ErrProfileNotFound
	}

	return user, nil
}

// Update applies a partial update to a profile. Only the owner may modify it.
func (srv *profileService) Update(ctx context.Context, actor usecase.Actor, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	if actor.ID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("profile belongs to another user")
	}

	user, err := srv.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	applyString(&user.FirstName, input.FirstName)
	applyString(&user.LastName, input.LastName)
	applyString(&user.Email, input.Email)
	applyString(&user.Profile.Location, input.Location)
	applyString(&user.Profile.Tel, input.Tel)
	applyString(&user.Profile.Description, input.Description)
	applyString(&user.Profile.WorkingHours, input.WorkingHours)
	applyString(&user.Profile.File, input.File)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.String("userID", userID.String()))

	return user, nil
}

// ListByRole retrieves all users carrying the given profile role.
func (srv *profileService) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithFieldDetail("type", "角色必須是 customer 或 business")
	}

	users, err := srv.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	return users, nil
}
