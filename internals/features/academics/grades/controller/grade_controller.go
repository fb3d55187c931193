package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	coursesModel "campushub_backend/internals/features/academics/courses/model"
	evaluationService "campushub_backend/internals/features/academics/evaluation/service"
	"campushub_backend/internals/features/academics/grades/dto"
	"campushub_backend/internals/features/academics/grades/model"
	"campushub_backend/internals/features/academics/grades/service"
	helper "campushub_backend/internals/helpers"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

// ✏️ PUT /api/grades/payment/:studentId (accounting admin)
func (ctrl *GradeController) SetPaymentStatus(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}

	var body dto.SetPaymentStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var rec model.GradeRecordModel
	err := ctrl.DB.Where("grade_record_student_id = ?", studentID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = model.GradeRecordModel{
			GradeRecordStudentID: studentID,
			PaymentMidterms:      model.PaymentPending,
			PaymentFinals:        model.PaymentPending,
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load grade record")
	}

	if err := service.ApplyPaymentStatus(&rec, body.Term, body.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrFinalsBeforeMidterms):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	if err := ctrl.DB.Save(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save grade record")
	}
	return helper.JsonUpdated(c, fmt.Sprintf("Payment status for %s updated successfully", body.Term), rec)
}

// ➕ POST /api/grades/upload (teacher) — one student's grade
func (ctrl *GradeController) UploadStudentGrade(c *fiber.Ctx) error {
	teacherID, err := helper.GetFacultyIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.UploadStudentGradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	sheet, entries, err := ctrl.upsertTeacherGrade(teacherID, body.EdpCode, body.Term, body.StudentID, body.Grade)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save grade")
	}

	return helper.JsonOK(c, "Grade uploaded successfully", dto.ToTeacherGradeDTO(*sheet, entries))
}

// 📄 GET /api/grades/student (student)
func (ctrl *GradeController) GetStudentGrades(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rec model.GradeRecordModel
	err = ctrl.DB.Where("grade_record_student_id = ?", studentID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "No grades available", dto.StudentGradesResponse{
			Grades: []dto.StudentGradeDTO{},
			Access: dto.AccessDTO{},
		})
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load grade record")
	}

	// every sheet containing this student, via JSONB containment
	probe := datatypes.JSON(fmt.Sprintf(`[{"student_id":%q}]`, studentID))
	var sheets []model.TeacherGradeModel
	if err := ctrl.DB.Where("teacher_grade_entries @> ?", probe).Find(&sheets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve grades")
	}

	grades := make([]dto.StudentGradeDTO, 0, len(sheets))
	for _, sheet := range sheets {
		entries, err := sheet.Entries()
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Corrupt grade sheet")
		}
		entry, ok := service.FindGradeEntry(entries, studentID)
		if !ok {
			continue
		}
		grades = append(grades, dto.StudentGradeDTO{
			EdpCode:       sheet.TeacherGradeEdpCode,
			Term:          sheet.TeacherGradeTerm,
			Grade:         entry.Grade,
			AccessGranted: rec.AccessForTerm(strings.ToLower(sheet.TeacherGradeTerm)),
		})
	}

	return helper.JsonOK(c, "Grades fetched successfully", dto.StudentGradesResponse{
		Grades: grades,
		Access: dto.AccessDTO{Midterms: rec.AccessMidterms, Finals: rec.AccessFinals},
	})
}

// 📤 POST /api/grades/upload/file (teacher) — CSV bulk import
func (ctrl *GradeController) UploadGradesFromFile(c *fiber.Ctx) error {
	teacherID, err := helper.GetFacultyIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	term := c.FormValue("term")
	if term != model.GradeTermMidterms && term != model.GradeTermFinals {
		return helper.JsonError(c, fiber.StatusBadRequest, `Invalid term. Must be either "Midterms" or "Finals"`)
	}

	fileHeader, err := c.FormFile("grades")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer file.Close()

	rows, err := service.ReadGradeRows(file)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to parse CSV file")
	}

	result := service.ImportGrades(rows, func(row service.GradeRow, grade float64) error {
		_, _, err := ctrl.upsertTeacherGrade(teacherID, row.EdpCode, term, row.StudentID, grade)
		return err
	})

	return helper.JsonOK(c, "Grades processed successfully", result)
}

// upsertTeacherGrade find-or-creates the (teacher, edpCode, term) sheet and
// upserts the student's grade. A Finals write also finalizes the grade into
// the evaluation ledger when the offering resolves to a course.
func (ctrl *GradeController) upsertTeacherGrade(teacherID, edpCode, term, studentID string, grade float64) (*model.TeacherGradeModel, []model.GradeEntry, error) {
	var sheet model.TeacherGradeModel
	err := ctrl.DB.
		Where("teacher_grade_teacher_id = ? AND teacher_grade_edp_code = ? AND teacher_grade_term = ?",
			teacherID, edpCode, term).
		First(&sheet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sheet = model.TeacherGradeModel{
			TeacherGradeTeacherID: teacherID,
			TeacherGradeEdpCode:   edpCode,
			TeacherGradeTerm:      term,
		}
	} else if err != nil {
		return nil, nil, err
	}

	entries, err := sheet.Entries()
	if err != nil {
		return nil, nil, err
	}
	entries = service.UpsertGradeEntry(entries, studentID, grade)
	if err := sheet.SetEntries(entries); err != nil {
		return nil, nil, err
	}
	if err := ctrl.DB.Save(&sheet).Error; err != nil {
		return nil, nil, err
	}

	if term == model.GradeTermFinals {
		var offering coursesModel.OfferedCourseModel
		if err := ctrl.DB.Where("offered_course_edp_code = ?", edpCode).First(&offering).Error; err == nil {
			if err := evaluationService.AutoUpdateEvaluation(ctrl.DB, studentID, offering.OfferedCourseCourseCode, grade); err != nil {
				log.Printf("[ERROR] auto evaluation for %s/%s: %v", studentID, offering.OfferedCourseCourseCode, err)
			}
		}
	}

	return &sheet, entries, nil
}
