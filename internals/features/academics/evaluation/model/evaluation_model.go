package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RemarksPassed = "Passed"
	RemarksFailed = "Failed"
)

// CourseEntry is one course outcome on the permanent record.
type CourseEntry struct {
	CourseCode string  `json:"course_code"`
	FinalGrade float64 `json:"final_grade"`
	Remarks    string  `json:"remarks"` // Passed / Failed, fixed at write time
}

// EvaluationModel is a student's permanent pass/fail record, one JSONB
// course list per student.
type EvaluationModel struct {
	EvaluationID        uuid.UUID      `gorm:"column:evaluation_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"evaluation_id"`
	EvaluationStudentID string         `gorm:"column:evaluation_student_id;type:varchar(30);uniqueIndex;not null" json:"evaluation_student_id"`
	EvaluationCourses   datatypes.JSON `gorm:"column:evaluation_courses;type:jsonb;not null;default:'[]'" json:"evaluation_courses"`
	EvaluationCreatedAt time.Time      `gorm:"column:evaluation_created_at;autoCreateTime" json:"evaluation_created_at"`
	EvaluationUpdatedAt time.Time      `gorm:"column:evaluation_updated_at;autoUpdateTime" json:"evaluation_updated_at"`
}

func (EvaluationModel) TableName() string {
	return "evaluations"
}

func (e *EvaluationModel) Courses() ([]CourseEntry, error) {
	if len(e.EvaluationCourses) == 0 {
		return nil, nil
	}
	var courses []CourseEntry
	if err := json.Unmarshal(e.EvaluationCourses, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (e *EvaluationModel) SetCourses(courses []CourseEntry) error {
	if courses == nil {
		courses = []CourseEntry{}
	}
	b, err := json.Marshal(courses)
	if err != nil {
		return err
	}
	e.EvaluationCourses = datatypes.JSON(b)
	return nil
}
