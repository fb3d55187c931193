// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clearanceRoute "campushub_backend/internals/features/academics/clearance/route"
	courseRoute "campushub_backend/internals/features/academics/courses/route"
	enrollmentRoute "campushub_backend/internals/features/academics/enrollment/route"
	evaluationRoute "campushub_backend/internals/features/academics/evaluation/route"
	gradeRoute "campushub_backend/internals/features/academics/grades/route"
	authRoute "campushub_backend/internals/features/users/auth/route"
	userRoute "campushub_backend/internals/features/users/user/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserAdminRoutes(api, db)
	userRoute.StudentProfileRoutes(api, db)

	log.Println("[INFO] Mounting Course routes...")
	courseRoute.CourseRoutes(api, db)

	log.Println("[INFO] Mounting Enrollment routes...")
	enrollmentRoute.EnrollmentRoutes(api, db)

	log.Println("[INFO] Mounting Grade routes...")
	gradeRoute.GradeRoutes(api, db)

	log.Println("[INFO] Mounting Clearance routes...")
	clearanceRoute.ClearanceRoutes(api, db)

	log.Println("[INFO] Mounting Evaluation routes...")
	evaluationRoute.EvaluationRoutes(api, db)
}
