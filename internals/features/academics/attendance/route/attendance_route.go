// file: internals/features/academics/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceapi "schoolhub_backend/internals/features/academics/attendance/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	h := &attendanceapi.AttendanceHandler{DB: db}

	grp := api.Group("/attendance")
	grp.Get("/", h.List)

	// marking: teachers and admin
	grp.Post("/mark", authmw.OnlyRoles("", "admin", "teacher"), h.Mark)
	grp.Patch("/:id", authmw.OnlyRoles("", "admin", "teacher"), h.Update)
	grp.Delete("/:id", authmw.OnlyRoles("", "admin"), h.Delete)
}
