package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/users/user/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

// UserAdminRoutes: MIS admin user management
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyAdminPosition("user management", constants.PositionMIS),
	)
	users.Post("/register", ctrl.RegisterUser)  // ➕ Create account
	users.Get("/", ctrl.GetUsers)               // 📄 All users
	users.Get("/role/:role", ctrl.GetUsersByRole)
	users.Get("/:id", ctrl.GetUser)             // 🔍 Detail
	users.Put("/:id", ctrl.UpdateUser)          // ✏️ Edit
	users.Delete("/:id", ctrl.DeleteUser)       // ❌ Deactivate (soft)
}

// StudentProfileRoutes: students manage their own profile
func StudentProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	students := api.Group("/students",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("student profile"), constants.RoleStudent),
	)
	students.Get("/profile", ctrl.GetStudentProfile)
	students.Put("/profile", ctrl.UpdateStudentProfile)
}
