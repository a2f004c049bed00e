// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classapi "schoolhub_backend/internals/features/school/classes/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	classes := &classapi.ClassHandler{DB: db}
	subjects := &classapi.SubjectHandler{DB: db}

	grp := api.Group("/classes")
	grp.Get("/", classes.List)
	grp.Get("/:id", classes.GetByID)
	grp.Post("/", authmw.OnlyRoles("", "admin"), classes.Create)
	grp.Patch("/:id", authmw.OnlyRoles("", "admin"), classes.Update)
	grp.Delete("/:id", authmw.OnlyRoles("", "admin"), classes.Delete)

	sub := api.Group("/subjects")
	sub.Get("/", subjects.List)
	sub.Post("/", authmw.OnlyRoles("", "admin"), subjects.Create)
	sub.Patch("/:id", authmw.OnlyRoles("", "admin"), subjects.Update)
	sub.Delete("/:id", authmw.OnlyRoles("", "admin"), subjects.Delete)
}
