// file: internals/features/academics/results/route/result_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultapi "schoolhub_backend/internals/features/academics/results/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

func ResultRoutes(api fiber.Router, db *gorm.DB) {
	h := &resultapi.ResultHandler{DB: db}

	grp := api.Group("/results")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)

	// entry and edits: teachers + admin; publish/delete: admin only
	grp.Post("/", authmw.OnlyRoles("", "admin", "teacher"), h.Create)
	grp.Patch("/:id", authmw.OnlyRoles("", "admin", "teacher"), h.Update)
	grp.Post("/:id/publish", authmw.OnlyRoles("", "admin"), h.Publish)
	grp.Delete("/:id", authmw.OnlyRoles("", "admin"), h.Delete)
}
