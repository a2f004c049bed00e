// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	dto "schoolhub_backend/internals/features/users/auth/dto"
	userModel "schoolhub_backend/internals/features/users/auth/model"
	helper "schoolhub_backend/internals/helpers"
)

type AuthHandler struct {
	DB *gorm.DB
}

const accessTokenTTL = 24 * time.Hour

/* =========================
   Register (POST /api/auth/register)
========================= */

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	in.UserEmail = strings.ToLower(strings.TrimSpace(in.UserEmail))
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	role := userModel.UserRoleTeacher
	if in.UserRole != "" {
		role = userModel.UserRole(in.UserRole)
	}

	m := userModel.User{
		UserName:     strings.TrimSpace(in.UserName),
		UserEmail:    in.UserEmail,
		UserPassword: string(hash),
		UserRole:     role,
		UserIsActive: true,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to register user")
	}
	return helper.JsonCreated(c, "registered", dto.ToUserResponse(m))
}

/* =========================
   Login (POST /api/auth/login)
========================= */

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	in.UserEmail = strings.ToLower(strings.TrimSpace(in.UserEmail))
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m userModel.User
	if err := h.DB.WithContext(c.Context()).
		Where("user_email = ?", in.UserEmail).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to login")
	}
	if !m.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(in.UserPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := makeAccessToken(m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return helper.JsonOK(c, "login success", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(m),
	})
}

func makeAccessToken(m userModel.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   m.UserID.String(),
		"user_name": m.UserName,
		"role":      string(m.UserRole),
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
