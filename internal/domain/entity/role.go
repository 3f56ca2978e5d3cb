// Package entity contains the core business objects of the project.
package entity

// Role represents the account type a user registers as.
// It is fixed at registration and never changes afterwards.
type Role string

const (
	// RoleCustomer indicates an account that orders offers and writes reviews.
	RoleCustomer Role = "customer"
	// RoleBusiness indicates an account that publishes offers and fulfils orders.
	RoleBusiness Role = "business"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness:
		return true
	default:
		return false
	}
}
