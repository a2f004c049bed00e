// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authapi "schoolhub_backend/internals/features/users/auth/controller"
	"schoolhub_backend/internals/middlewares"
)

// AuthRoutes: public login/register endpoints
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	h := &authapi.AuthHandler{DB: db}

	grp := api.Group("/auth")
	grp.Post("/register", h.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), h.Login)
}
