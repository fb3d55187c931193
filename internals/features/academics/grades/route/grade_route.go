package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/grades/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGradeController(db)

	grades := api.Group("/grades", authMiddleware.AuthMiddleware(db))

	// Accounting admin routes
	grades.Put("/payment/:studentId",
		authMiddleware.OnlyAdminPosition("payment status", constants.PositionAccounting),
		ctrl.SetPaymentStatus,
	)

	// Teacher routes
	grades.Post("/upload",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("grade upload"), constants.RoleTeacher),
		ctrl.UploadStudentGrade,
	)
	grades.Post("/upload/file",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("grade upload"), constants.RoleTeacher),
		ctrl.UploadGradesFromFile,
	)

	// Student routes
	grades.Get("/student",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("grades"), constants.RoleStudent),
		ctrl.GetStudentGrades,
	)
}
