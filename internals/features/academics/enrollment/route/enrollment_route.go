package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/enrollment/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentController(db)

	enrollments := api.Group("/enrollments", authMiddleware.AuthMiddleware(db))

	enrollments.Get("/student",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("enrollment"), constants.RoleStudent),
		ctrl.GetStudentEnrollment,
	)
	enrollments.Get("/",
		authMiddleware.OnlyAdminPosition("enrollment records", constants.PositionRegistrar),
		ctrl.GetEnrollments,
	)
}
