package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/evaluation/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func EvaluationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEvaluationController(db)

	evaluation := api.Group("/evaluation", authMiddleware.AuthMiddleware(db))

	// Registrar admin only
	evaluation.Post("/manual",
		authMiddleware.OnlyAdminPosition("evaluation entry", constants.PositionRegistrar),
		ctrl.ManualUpdateEvaluation,
	)
	evaluation.Delete("/:studentId/course/:courseCode",
		authMiddleware.OnlyAdminPosition("evaluation entry", constants.PositionRegistrar),
		ctrl.DeleteCourseFromEvaluation,
	)

	// Student (own record) + registrar admin
	evaluation.Get("/:studentId", ctrl.GetStudentEvaluation)
}
