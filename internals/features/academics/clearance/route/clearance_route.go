package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/clearance/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func ClearanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClearanceController(db)

	clearance := api.Group("/clearance", authMiddleware.AuthMiddleware(db))

	// Teacher routes
	clearance.Get("/teacher",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("clearance"), constants.RoleTeacher),
		ctrl.GetTeacherClearances,
	)
	clearance.Put("/teacher/:studentId/:courseCode",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("clearance"), constants.RoleTeacher),
		ctrl.SetClearance,
	)

	// Student routes
	clearance.Get("/student",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("clearance"), constants.RoleStudent),
		ctrl.GetStudentClearance,
	)
}
