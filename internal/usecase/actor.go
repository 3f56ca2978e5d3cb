// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of an operation. It is built by
// the authentication middleware from the verified token claims.
type Actor struct {
	ID      uuid.UUID
	Role    entity.Role
	IsStaff bool
}

// IsBusiness reports whether the actor acts as a business user.
func (a Actor) IsBusiness() bool {
	return a.Role == entity.RoleBusiness
}

// IsCustomer reports whether the actor acts as a customer.
func (a Actor) IsCustomer() bool {
	return a.Role == entity.RoleCustomer
}
