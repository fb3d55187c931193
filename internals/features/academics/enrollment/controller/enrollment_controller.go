package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/enrollment/model"
	helper "campushub_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// 📄 GET /api/enrollments (registrar admin)
func (ctrl *EnrollmentController) GetEnrollments(c *fiber.Ctx) error {
	var enrollments []model.EnrollmentModel
	q := ctrl.DB.Order("enrollment_created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("enrollment_status = ?", status)
	}
	if err := q.Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve enrollments")
	}
	return helper.JsonList(c, "Enrollments fetched successfully", enrollments)
}

// 🔍 GET /api/enrollments/student (student) — own record
func (ctrl *EnrollmentController) GetStudentEnrollment(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var enrollment model.EnrollmentModel
	if err := ctrl.DB.Where("enrollment_student_id = ?", studentID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No enrollment record found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve enrollment")
	}
	return helper.JsonOK(c, "Enrollment fetched successfully", enrollment)
}
