// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentapi "schoolhub_backend/internals/features/school/students/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	h := &studentapi.StudentHandler{DB: db}

	grp := api.Group("/students")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)

	// writes: admin only
	grp.Post("/", authmw.OnlyRoles("", "admin"), h.Create)
	grp.Patch("/:id", authmw.OnlyRoles("", "admin"), h.Update)
	grp.Delete("/:id", authmw.OnlyRoles("", "admin"), h.Delete)
}
