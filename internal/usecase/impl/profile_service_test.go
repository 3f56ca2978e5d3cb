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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   logger,
	})

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func profileOwner() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Username:  "corner_bakery",
		Email:     "bakery@example.com",
		FirstName: "Mei",
		Profile: &entity.Profile{
			Type:     entity.RoleBusiness,
			Location: "Taipei",
		},
	}
}

func TestProfileService_Get_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := profileOwner()

	fx.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

	user, err := fx.service.Get(ctx, owner.ID)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, owner.Username, user.Username)
}

func TestProfileService_Get_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Get(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_Get_MissingProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := profileOwner()
	owner.Profile = nil

	fx.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

	user, err := fx.service.Get(ctx, owner.ID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_Update_Owner(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := profileOwner()
	actor := usecase.Actor{ID: owner.ID, Role: entity.RoleBusiness}

	newLocation := "Kaohsiung"
	newFirstName := "Mei-Ling"

	fx.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, newFirstName, user.FirstName)
			assert.Equal(t, newLocation, user.Profile.Location)
			// Untouched fields keep their values.
			assert.Equal(t, "bakery@example.com", user.Email)
		}).
		Return(nil)

	user, err := fx.service.Update(ctx, actor, owner.ID, usecase.UpdateProfileInput{
		FirstName: &newFirstName,
		Location:  &newLocation,
	})

	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestProfileService_Update_StaffNotOwner(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := profileOwner()
	staff := usecase.Actor{ID: uuid.New(), Role: entity.RoleCustomer, IsStaff: true}

	newTel := "02-1234-5678"

	user, err := fx.service.Update(ctx, staff, owner.ID, usecase.UpdateProfileInput{Tel: &newTel})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProfileService_Update_Stranger(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := profileOwner()
	stranger := usecase.Actor{ID: uuid.New(), Role: entity.RoleCustomer}

	newTel := "02-1234-5678"
	user, err := fx.service.Update(ctx, stranger, owner.ID, usecase.UpdateProfileInput{Tel: &newTel})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProfileService_ListByRole_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	users := []*entity.User{profileOwner()}

	fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleBusiness).Return(users, nil)

	listed, err := fx.service.ListByRole(ctx, entity.RoleBusiness)

	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestProfileService_ListByRole_InvalidRole(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	listed, err := fx.service.ListByRole(ctx, entity.Role("admin"))

	assert.Error(t, err)
	assert.Nil(t, listed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
