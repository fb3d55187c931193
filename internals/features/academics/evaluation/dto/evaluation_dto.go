package dto

import (
	"time"

	"campushub_backend/internals/features/academics/evaluation/model"
	"campushub_backend/internals/features/academics/evaluation/service"
)

// ====================
// Request DTO
// ====================
type ManualEvaluationCourse struct {
	CourseCode string  `json:"course_code" validate:"required"`
	// no `required`: 0 is a legal failing percentage, and required
	// treats a zero float as missing
	FinalGrade float64 `json:"final_grade" validate:"min=0,max=100"`
}

type ManualUpdateEvaluationRequest struct {
	StudentID string                   `json:"student_id" validate:"required"`
	Courses   []ManualEvaluationCourse `json:"courses" validate:"required,min=1,dive"`
}

// ====================
// Response DTO
// ====================
type EvaluationDTO struct {
	EvaluationID string              `json:"evaluation_id"`
	StudentID    string              `json:"student_id"`
	Courses      []model.CourseEntry `json:"courses"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type EvaluationWithStatisticsDTO struct {
	Evaluation EvaluationDTO      `json:"evaluation"`
	Statistics service.Statistics `json:"statistics"`
}

// ====================
// Converter
// ====================
func ToEvaluationDTO(m model.EvaluationModel, courses []model.CourseEntry) EvaluationDTO {
	if courses == nil {
		courses = []model.CourseEntry{}
	}
	return EvaluationDTO{
		EvaluationID: m.EvaluationID.String(),
		StudentID:    m.EvaluationStudentID,
		Courses:      courses,
		CreatedAt:    m.EvaluationCreatedAt,
		UpdatedAt:    m.EvaluationUpdatedAt,
	}
}
