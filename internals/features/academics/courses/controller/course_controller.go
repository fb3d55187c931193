package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/courses/dto"
	"campushub_backend/internals/features/academics/courses/model"
	helper "campushub_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// ➕ POST /api/courses (registrar admin)
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.CourseModel
	err := ctrl.DB.Where("course_code = ?", body.CourseCode).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Course already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing course")
	}

	course := model.CourseModel{
		CourseCode:          body.CourseCode,
		CourseName:          body.CourseName,
		CourseUnits:         body.CourseUnits,
		CoursePrerequisites: body.CoursePrerequisites,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created successfully", course)
}

// 📄 GET /api/courses (registrar admin)
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctrl.DB.Order("course_code ASC").Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}
	return helper.JsonList(c, "Courses fetched successfully", courses)
}

// ➕ POST /api/courses/offerings (registrar admin)
func (ctrl *CourseController) CreateOffering(c *fiber.Ctx) error {
	var body dto.CreateOfferingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_code = ?", body.CourseCode).First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course "+body.CourseCode+" does not exist")
	}

	// edpCode is globally unique
	var existing model.OfferedCourseModel
	err := ctrl.DB.Where("offered_course_edp_code = ?", body.EdpCode).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "EDP code already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing offering")
	}

	offering := model.OfferedCourseModel{
		OfferedCourseEdpCode:    body.EdpCode,
		OfferedCourseCourseCode: body.CourseCode,
		OfferedCourseDay:        body.Day,
		OfferedCourseTime:       body.Time,
		OfferedCourseRoom:       body.Room,
		OfferedCourseTeacherID:  body.TeacherID,
	}
	if err := ctrl.DB.Create(&offering).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create offering")
	}
	return helper.JsonCreated(c, "Offering created successfully", dto.ToOfferingDTO(offering))
}

// 📄 GET /api/courses/offerings (registrar admin)
func (ctrl *CourseController) GetOfferings(c *fiber.Ctx) error {
	var offerings []model.OfferedCourseModel
	if err := ctrl.DB.Order("offered_course_edp_code ASC").Find(&offerings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve offerings")
	}

	resp := make([]dto.OfferingDTO, len(offerings))
	for i, o := range offerings {
		resp[i] = dto.ToOfferingDTO(o)
	}
	return helper.JsonList(c, "Offerings fetched successfully", resp)
}

// 📄 GET /api/courses/offerings/teacher (teacher) — own assignments
func (ctrl *CourseController) GetTeacherOfferings(c *fiber.Ctx) error {
	teacherID, err := helper.GetFacultyIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var offerings []model.OfferedCourseModel
	if err := ctrl.DB.
		Where("offered_course_teacher_id = ?", teacherID).
		Order("offered_course_edp_code ASC").
		Find(&offerings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve offerings")
	}

	resp := make([]dto.OfferingDTO, len(offerings))
	for i, o := range offerings {
		resp[i] = dto.ToOfferingDTO(o)
	}
	return helper.JsonList(c, "Offerings fetched successfully", resp)
}
