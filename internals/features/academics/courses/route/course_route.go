package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/courses/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := api.Group("/courses", authMiddleware.AuthMiddleware(db))

	// Teacher's own assignments (must precede the registrar group's param-less paths)
	courses.Get("/offerings/teacher",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("course offerings"), constants.RoleTeacher),
		ctrl.GetTeacherOfferings,
	)

	registrar := courses.Group("",
		authMiddleware.OnlyAdminPosition("course catalog", constants.PositionRegistrar),
	)
	registrar.Post("/", ctrl.CreateCourse)              // ➕ Catalog entry
	registrar.Get("/", ctrl.GetCourses)                 // 📄 Catalog
	registrar.Post("/offerings", ctrl.CreateOffering)   // ➕ Scheduled offering
	registrar.Get("/offerings", ctrl.GetOfferings)      // 📄 All offerings
}
