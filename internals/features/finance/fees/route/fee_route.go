// file: internals/features/finance/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeapi "schoolhub_backend/internals/features/finance/fees/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

func FeeRoutes(api fiber.Router, db *gorm.DB) {
	fees := &feeapi.FeeRecordHandler{DB: db}
	structures := &feeapi.FeeStructureHandler{DB: db}

	grp := api.Group("/fees")
	grp.Get("/", authmw.OnlyRoles("", "admin", "bursar"), fees.List)
	grp.Get("/:id", authmw.OnlyRoles("", "admin", "bursar"), fees.GetByID)
	grp.Post("/", authmw.OnlyRoles("", "admin", "bursar"), fees.Create)
	grp.Delete("/:id", authmw.OnlyRoles("", "admin"), fees.Delete)

	sgrp := api.Group("/fee-structures")
	sgrp.Get("/", authmw.OnlyRoles("", "admin", "bursar"), structures.List)
	sgrp.Post("/", authmw.OnlyRoles("", "admin"), structures.Create)
	sgrp.Post("/:id/apply", authmw.OnlyRoles("", "admin"), structures.Apply)
	sgrp.Delete("/:id", authmw.OnlyRoles("", "admin"), structures.Delete)
}
