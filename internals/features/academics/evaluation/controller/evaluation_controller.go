package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	coursesModel "campushub_backend/internals/features/academics/courses/model"
	"campushub_backend/internals/features/academics/evaluation/dto"
	"campushub_backend/internals/features/academics/evaluation/model"
	"campushub_backend/internals/features/academics/evaluation/service"
	userModel "campushub_backend/internals/features/users/user/model"
	helper "campushub_backend/internals/helpers"
)

type EvaluationController struct {
	DB *gorm.DB
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{DB: db}
}

// ➕ POST /api/evaluation/manual (registrar admin) — transferees/irregular students
func (ctrl *EvaluationController) ManualUpdateEvaluation(c *fiber.Ctx) error {
	var body dto.ManualUpdateEvaluationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Student must exist
	var student userModel.UserModel
	if err := ctrl.DB.
		Where("user_student_id = ? AND user_role = ?", body.StudentID, constants.RoleStudent).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	// Every course must exist before anything is written
	for _, course := range body.Courses {
		var exists coursesModel.CourseModel
		if err := ctrl.DB.Where("course_code = ?", course.CourseCode).First(&exists).Error; err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course "+course.CourseCode+" does not exist")
		}
	}

	var evaluation model.EvaluationModel
	err := ctrl.DB.Where("evaluation_student_id = ?", body.StudentID).First(&evaluation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		evaluation = model.EvaluationModel{EvaluationStudentID: body.StudentID}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load evaluation")
	}

	courses, err := evaluation.Courses()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt evaluation record")
	}
	for _, newCourse := range body.Courses {
		courses = service.UpsertCourseEntry(courses, model.CourseEntry{
			CourseCode: newCourse.CourseCode,
			FinalGrade: newCourse.FinalGrade,
			Remarks:    service.DeriveManualRemarks(newCourse.FinalGrade),
		})
	}
	if err := evaluation.SetCourses(courses); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode evaluation")
	}

	if err := ctrl.DB.Save(&evaluation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save evaluation")
	}
	return helper.JsonUpdated(c, "Evaluation updated successfully", dto.ToEvaluationDTO(evaluation, courses))
}

// 🔍 GET /api/evaluation/:studentId (student + registrar admin)
func (ctrl *EvaluationController) GetStudentEvaluation(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}

	// Students may only read their own record; otherwise registrar admins only
	role, _ := helper.GetRoleFromToken(c)
	switch role {
	case constants.RoleStudent:
		own, err := helper.GetStudentIDFromToken(c)
		if err != nil || own != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to view this evaluation")
		}
	case constants.RoleAdmin:
		position, _ := helper.GetAdminPositionFromToken(c)
		if position != constants.PositionRegistrar {
			return helper.JsonError(c, fiber.StatusForbidden, constants.PositionError(constants.PositionRegistrar, "evaluation records"))
		}
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to view this evaluation")
	}

	var evaluation model.EvaluationModel
	if err := ctrl.DB.Where("evaluation_student_id = ?", studentID).First(&evaluation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No evaluation record found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load evaluation")
	}

	courses, err := evaluation.Courses()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt evaluation record")
	}

	stats := service.ComputeStatistics(courses, ctrl.unitsByCourse(courses))

	return helper.JsonOK(c, "Evaluation fetched successfully", dto.EvaluationWithStatisticsDTO{
		Evaluation: dto.ToEvaluationDTO(evaluation, courses),
		Statistics: stats,
	})
}

// ❌ DELETE /api/evaluation/:studentId/course/:courseCode (registrar admin)
func (ctrl *EvaluationController) DeleteCourseFromEvaluation(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	courseCode := c.Params("courseCode")
	if studentID == "" || courseCode == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID and course code are required")
	}

	var evaluation model.EvaluationModel
	if err := ctrl.DB.Where("evaluation_student_id = ?", studentID).First(&evaluation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Evaluation record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load evaluation")
	}

	courses, err := evaluation.Courses()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt evaluation record")
	}
	courses, _ = service.RemoveCourseEntry(courses, courseCode)
	if err := evaluation.SetCourses(courses); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode evaluation")
	}

	if err := ctrl.DB.Save(&evaluation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save evaluation")
	}
	return helper.JsonDeleted(c, "Course removed from evaluation", dto.ToEvaluationDTO(evaluation, courses))
}

// unitsByCourse resolves unit counts for the statistics read path.
func (ctrl *EvaluationController) unitsByCourse(courses []model.CourseEntry) map[string]int {
	if len(courses) == 0 {
		return nil
	}
	codes := make([]string, 0, len(courses))
	for _, c := range courses {
		codes = append(codes, c.CourseCode)
	}

	var catalog []coursesModel.CourseModel
	if err := ctrl.DB.Where("course_code IN ?", codes).Find(&catalog).Error; err != nil {
		return nil
	}
	units := make(map[string]int, len(catalog))
	for _, c := range catalog {
		units[c.CourseCode] = c.CourseUnits
	}
	return units
}
