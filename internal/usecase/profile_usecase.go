package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the editable profile fields. Nil pointers mean
// "leave unchanged"; pointed-to empty strings overwrite with empty.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
	File         *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// Get retrieves the user owning the profile, including the profile itself.
	Get(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Update applies a partial update to a profile. Only the profile owner may
	// modify it.
	Update(ctx context.Context, actor Actor, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// ListByRole retrieves all users carrying the given profile role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
}
