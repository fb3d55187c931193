package dto

import (
	"time"

	"campushub_backend/internals/features/academics/grades/model"
)

// ====================
// Request DTO
// ====================
type SetPaymentStatusRequest struct {
	Term   string `json:"term" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type UploadStudentGradeRequest struct {
	EdpCode   string  `json:"edp_code" validate:"required"`
	StudentID string  `json:"student_id" validate:"required"`
	Grade     float64 `json:"grade" validate:"min=0"`
	Term      string  `json:"term" validate:"required,oneof=Midterms Finals"`
}

// ====================
// Response DTO
// ====================
type TeacherGradeDTO struct {
	TeacherGradeID string             `json:"teacher_grade_id"`
	TeacherID      string             `json:"teacher_id"`
	EdpCode        string             `json:"edp_code"`
	Term           string             `json:"term"`
	Grades         []model.GradeEntry `json:"grades"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// StudentGradeDTO annotates one submitted grade with the access flag for
// its term. The grade value itself is always present; the flag is advisory.
type StudentGradeDTO struct {
	EdpCode       string  `json:"edp_code"`
	Term          string  `json:"term"`
	Grade         float64 `json:"grade"`
	AccessGranted bool    `json:"access_granted"`
}

type StudentGradesResponse struct {
	Grades []StudentGradeDTO `json:"grades"`
	Access AccessDTO         `json:"access"`
}

type AccessDTO struct {
	Midterms bool `json:"midterms"`
	Finals   bool `json:"finals"`
}

// ====================
// Converter
// ====================
func ToTeacherGradeDTO(m model.TeacherGradeModel, entries []model.GradeEntry) TeacherGradeDTO {
	if entries == nil {
		entries = []model.GradeEntry{}
	}
	return TeacherGradeDTO{
		TeacherGradeID: m.TeacherGradeID.String(),
		TeacherID:      m.TeacherGradeTeacherID,
		EdpCode:        m.TeacherGradeEdpCode,
		Term:           m.TeacherGradeTerm,
		Grades:         entries,
		UpdatedAt:      m.TeacherGradeUpdatedAt,
	}
}
