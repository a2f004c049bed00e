// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentapi "schoolhub_backend/internals/features/finance/payments/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	h := &paymentapi.PaymentHandler{DB: db}

	grp := api.Group("/payments")
	grp.Get("/", authmw.OnlyRoles("", "admin", "bursar"), h.List)
	grp.Get("/:id", authmw.OnlyRoles("", "admin", "bursar"), h.GetByID)
	grp.Post("/", authmw.OnlyRoles("", "admin", "bursar"), h.Create)

	// gateway callback flow; public via the auth middleware's skip list,
	// since the payer lands here straight from checkout
	api.Get("/paystack/verify/:reference", h.VerifyPaystack)
}
