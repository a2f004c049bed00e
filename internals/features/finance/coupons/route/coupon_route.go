// file: internals/features/finance/coupons/route/coupon_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	couponapi "schoolhub_backend/internals/features/finance/coupons/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

func CouponRoutes(api fiber.Router, db *gorm.DB) {
	h := &couponapi.CouponHandler{DB: db}

	grp := api.Group("/coupons")
	grp.Get("/", authmw.OnlyRoles("", "admin", "bursar"), h.List)
	grp.Post("/validate", h.Validate)

	grp.Post("/", authmw.OnlyRoles("", "admin"), h.Create)
	grp.Patch("/:id", authmw.OnlyRoles("", "admin"), h.Update)
	grp.Delete("/:id", authmw.OnlyRoles("", "admin"), h.Delete)
}
