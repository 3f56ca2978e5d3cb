// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. It carries the account fields
// managed at registration plus the role-specific profile.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login name, also shown on offers and reviews.
	Email        string    // The user's primary contact email.
	FirstName    string    // Optional given name, projected onto profile output.
	LastName     string    // Optional family name, projected onto profile output.
	PasswordHash string    // Stores the bcrypt-hashed password for the email/password credential.
	IsStaff      bool      // Grants staff-only operations (currently order deletion).
	Profile      *Profile  // The role profile created together with the account.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Role returns the role recorded on the user's profile.
// The second return value is false when no profile is attached.
func (u *User) Role() (Role, bool) {
	if u.Profile == nil {
		return "", false
	}

	return u.Profile.Type, true
}

// IsBusiness reports whether the user holds a business profile.
func (u *User) IsBusiness() bool {
	role, ok := u.Role()

	return ok && role == RoleBusiness
}

// Profile holds the contact and presentation data of an account.
// Exactly one profile exists per user; its Type never changes after creation.
type Profile struct {
	UserID       uuid.UUID // Foreign key that links this profile to its User.
	Type         Role      // customer or business, copied from registration.
	Location     string    // Optional free text, rendered as "" when unset.
	Tel          string    // Optional free text, rendered as "" when unset.
	Description  string    // Optional free text, rendered as "" when unset.
	WorkingHours string    // Optional free text, rendered as "" when unset.
	File         string    // Stored blob key of the profile image, "" when none was uploaded.
	CreatedAt    time.Time // Timestamp of when this profile was created. Read-only.
}
