// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — user role
// =========================================================

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleBursar  UserRole = "bursar"
	UserRoleTeacher UserRole = "teacher"
)

// =========================================================
// MODEL
// =========================================================

type User struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uniq_user_email" json:"user_email"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`

	UserRole     UserRole `gorm:"column:user_role;type:varchar(20);not null;default:'teacher'" json:"user_role"`
	UserIsActive bool     `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *User) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UserUpdatedAt = time.Now()
	return nil
}
