// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "schoolhub_backend/internals/features/users/auth/model"
)

type RegisterDTO struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"omitempty,oneof=admin bursar teacher"`
}

type LoginDTO struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(m userModel.User) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      string(m.UserRole),
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
