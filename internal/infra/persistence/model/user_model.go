// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(150);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	FirstName    string    `gorm:"type:varchar(150);not null;default:''"`
	LastName     string    `gorm:"type:varchar(150);not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsStaff      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID)
// and doubles as the primary key: one profile per user.
type ProfileModel struct {
	UserID       uuid.UUID `gorm:"primaryKey;type:uuid"`
	Type         string    `gorm:"type:varchar(20);not null;index"`
	Location     string    `gorm:"type:varchar(255);not null;default:''"`
	Tel          string    `gorm:"type:varchar(50);not null;default:''"`
	Description  string    `gorm:"type:text;not null;default:''"`
	WorkingHours string    `gorm:"type:varchar(100);not null;default:''"`
	File         string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// --- Mapper functions ---

// ToUserDomain converts a GORM UserModel to a domain User entity.
func ToUserDomain(data *UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		IsStaff:      data.IsStaff,
		Profile:      ToProfileDomain(data.Profile),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// FromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func FromUserDomain(data *entity.User) *UserModel {
	if data == nil {
		return nil
	}

	return &UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		IsStaff:      data.IsStaff,
		Profile:      FromProfileDomain(data.Profile),
	}
}

// ToProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func ToProfileDomain(data *ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:       data.UserID,
		Type:         entity.Role(data.Type),
		Location:     data.Location,
		Tel:          data.Tel,
		Description:  data.Description,
		WorkingHours: data.WorkingHours,
		File:         data.File,
		CreatedAt:    data.CreatedAt,
	}
}

// FromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func FromProfileDomain(data *entity.Profile) *ProfileModel {
	if data == nil {
		return nil
	}

	return &ProfileModel{
		UserID:       data.UserID,
		Type:         data.Type.String(),
		Location:     data.Location,
		Tel:          data.Tel,
		Description:  data.Description,
		WorkingHours: data.WorkingHours,
		File:         data.File,
		CreatedAt:    data.CreatedAt,
	}
}
