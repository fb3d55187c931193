package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Grading terms (capitalized, as teachers submit them; the payment record
// keys are the lowercase forms).
const (
	GradeTermMidterms = "Midterms"
	GradeTermFinals   = "Finals"
)

// GradeEntry is one (student, grade) pair inside a teacher's grade sheet.
type GradeEntry struct {
	StudentID string  `json:"student_id"`
	Grade     float64 `json:"grade"`
}

// TeacherGradeModel is one grade sheet: the grades a teacher submitted for
// one offering and term, stored as a JSONB entry list.
type TeacherGradeModel struct {
	TeacherGradeID        uuid.UUID      `gorm:"column:teacher_grade_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"teacher_grade_id"`
	TeacherGradeTeacherID string         `gorm:"column:teacher_grade_teacher_id;type:varchar(30);not null;uniqueIndex:uq_teacher_grade_sheet" json:"teacher_grade_teacher_id"`
	TeacherGradeEdpCode   string         `gorm:"column:teacher_grade_edp_code;type:varchar(20);not null;uniqueIndex:uq_teacher_grade_sheet" json:"teacher_grade_edp_code"`
	TeacherGradeTerm      string         `gorm:"column:teacher_grade_term;type:varchar(10);not null;uniqueIndex:uq_teacher_grade_sheet" json:"teacher_grade_term"`
	TeacherGradeEntries   datatypes.JSON `gorm:"column:teacher_grade_entries;type:jsonb;not null;default:'[]'" json:"teacher_grade_entries"`
	TeacherGradeCreatedAt time.Time      `gorm:"column:teacher_grade_created_at;autoCreateTime" json:"teacher_grade_created_at"`
	TeacherGradeUpdatedAt time.Time      `gorm:"column:teacher_grade_updated_at;autoUpdateTime" json:"teacher_grade_updated_at"`
}

func (TeacherGradeModel) TableName() string {
	return "teacher_grades"
}

func (t *TeacherGradeModel) Entries() ([]GradeEntry, error) {
	if len(t.TeacherGradeEntries) == 0 {
		return nil, nil
	}
	var entries []GradeEntry
	if err := json.Unmarshal(t.TeacherGradeEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (t *TeacherGradeModel) SetEntries(entries []GradeEntry) error {
	if entries == nil {
		entries = []GradeEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	t.TeacherGradeEntries = datatypes.JSON(b)
	return nil
}
