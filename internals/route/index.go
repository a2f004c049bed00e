// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "schoolhub_backend/internals/features/academics/attendance/route"
	resultRoute "schoolhub_backend/internals/features/academics/results/route"
	couponRoute "schoolhub_backend/internals/features/finance/coupons/route"
	feeRoute "schoolhub_backend/internals/features/finance/fees/route"
	paymentRoute "schoolhub_backend/internals/features/finance/payments/route"
	classRoute "schoolhub_backend/internals/features/school/classes/route"
	studentRoute "schoolhub_backend/internals/features/school/students/route"
	teacherRoute "schoolhub_backend/internals/features/school/teachers/route"
	authRoute "schoolhub_backend/internals/features/users/auth/route"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under /api. Auth endpoints stay public;
// everything else sits behind the JWT middleware (role checks live in each
// feature's route file).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// public
	authRoute.AuthRoutes(api, db)

	// protected
	protected := api.Group("", authmw.AuthMiddleware(db))

	studentRoute.StudentRoutes(protected, db)
	teacherRoute.TeacherRoutes(protected, db)
	classRoute.ClassRoutes(protected, db)

	attendanceRoute.AttendanceRoutes(protected, db)
	resultRoute.ResultRoutes(protected, db)

	feeRoute.FeeRoutes(protected, db)
	couponRoute.CouponRoutes(protected, db)
	paymentRoute.PaymentRoutes(protected, db)
}
