// file: internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherapi "schoolhub_backend/internals/features/school/teachers/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	h := &teacherapi.TeacherHandler{DB: db}

	grp := api.Group("/teachers")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)

	grp.Post("/", authmw.OnlyRoles("", "admin"), h.Create)
	grp.Patch("/:id", authmw.OnlyRoles("", "admin"), h.Update)
	grp.Delete("/:id", authmw.OnlyRoles("", "admin"), h.Delete)
}
