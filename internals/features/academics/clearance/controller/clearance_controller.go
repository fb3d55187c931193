package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/clearance/dto"
	"campushub_backend/internals/features/academics/clearance/model"
	"campushub_backend/internals/features/academics/clearance/service"
	coursesModel "campushub_backend/internals/features/academics/courses/model"
	enrollmentModel "campushub_backend/internals/features/academics/enrollment/model"
	helper "campushub_backend/internals/helpers"
)

type ClearanceController struct {
	DB *gorm.DB
}

func NewClearanceController(db *gorm.DB) *ClearanceController {
	return &ClearanceController{DB: db}
}

// ✏️ PUT /api/clearance/teacher/:studentId/:courseCode (teacher)
func (ctrl *ClearanceController) SetClearance(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	courseCode := c.Params("courseCode")
	if studentID == "" || courseCode == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID and course code are required")
	}

	teacherID, err := helper.GetFacultyIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.SetClearanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !service.IsValidStatus(body.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status")
	}

	// Only the assigned teacher may write this course's clearance
	var course coursesModel.OfferedCourseModel
	if err := ctrl.DB.
		Where("offered_course_course_code = ? AND offered_course_teacher_id = ?", courseCode, teacherID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this clearance")
	}

	var clearance model.ClearanceModel
	err = ctrl.DB.Where("clearance_student_id = ?", studentID).First(&clearance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		clearance = model.ClearanceModel{ClearanceStudentID: studentID}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load clearance")
	}

	entries, err := clearance.Entries()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt clearance record")
	}
	entries = service.UpsertEntry(entries, model.ClearanceEntry{
		CourseCode: courseCode,
		TeacherID:  teacherID,
		Status:     body.Status,
		Remarks:    body.Remarks,
	})
	if err := clearance.SetEntries(entries); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode clearance")
	}

	if err := ctrl.DB.Save(&clearance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save clearance")
	}

	// Cascade: all Cleared → enrollment Cleared. One-directional; a later
	// Rejected write never reverts an enrollment already cascaded.
	if body.Status == model.StatusCleared && service.AllCleared(entries) {
		if err := ctrl.DB.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_student_id = ?", studentID).
			Update("enrollment_status", enrollmentModel.StatusCleared).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment status")
		}
	}

	return helper.JsonUpdated(c, "Clearance status updated successfully", dto.ToClearanceDTO(clearance, entries))
}

// 📄 GET /api/clearance/teacher (teacher) — clearances touching own courses
func (ctrl *ClearanceController) GetTeacherClearances(c *fiber.Ctx) error {
	teacherID, err := helper.GetFacultyIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var courses []coursesModel.OfferedCourseModel
	if err := ctrl.DB.
		Where("offered_course_teacher_id = ?", teacherID).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}
	if len(courses) == 0 {
		return helper.JsonList(c, "Clearances fetched successfully", []dto.ClearanceDTO{})
	}

	// JSONB containment per assigned course code
	q := ctrl.DB
	for i, course := range courses {
		probe := datatypes.JSON(fmt.Sprintf(`[{"course_code":%q}]`, course.OfferedCourseCourseCode))
		if i == 0 {
			q = q.Where("clearance_entries @> ?", probe)
		} else {
			q = q.Or("clearance_entries @> ?", probe)
		}
	}

	var clearances []model.ClearanceModel
	if err := q.Find(&clearances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve clearances")
	}

	resp := make([]dto.ClearanceDTO, 0, len(clearances))
	for _, cl := range clearances {
		entries, err := cl.Entries()
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt clearance record")
		}
		resp = append(resp, dto.ToClearanceDTO(cl, entries))
	}
	return helper.JsonList(c, "Clearances fetched successfully", resp)
}

// 🔍 GET /api/clearance/student (student) — own record
func (ctrl *ClearanceController) GetStudentClearance(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var clearance model.ClearanceModel
	if err := ctrl.DB.Where("clearance_student_id = ?", studentID).First(&clearance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "No clearance records found", fiber.Map{
				"clearances": []model.ClearanceEntry{},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve clearance")
	}

	entries, err := clearance.Entries()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt clearance record")
	}
	return helper.JsonOK(c, "Clearance fetched successfully", dto.ToClearanceDTO(clearance, entries))
}
