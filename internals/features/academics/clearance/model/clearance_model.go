package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Clearance entry statuses.
const (
	StatusPending  = "Pending"
	StatusCleared  = "Cleared"
	StatusRejected = "Rejected"
)

// ClearanceEntry is one per-course sign-off by the assigned teacher.
type ClearanceEntry struct {
	CourseCode string `json:"course_code"`
	TeacherID  string `json:"teacher_id"`
	Status     string `json:"status"`
	Remarks    string `json:"remarks,omitempty"`
}

type ClearanceModel struct {
	ClearanceID        uuid.UUID      `gorm:"column:clearance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"clearance_id"`
	ClearanceStudentID string         `gorm:"column:clearance_student_id;type:varchar(30);uniqueIndex;not null" json:"clearance_student_id"`
	ClearanceEntries   datatypes.JSON `gorm:"column:clearance_entries;type:jsonb;not null;default:'[]'" json:"clearance_entries"`
	ClearanceCreatedAt time.Time      `gorm:"column:clearance_created_at;autoCreateTime" json:"clearance_created_at"`
	ClearanceUpdatedAt time.Time      `gorm:"column:clearance_updated_at;autoUpdateTime" json:"clearance_updated_at"`
}

func (ClearanceModel) TableName() string {
	return "clearances"
}

func (m *ClearanceModel) Entries() ([]ClearanceEntry, error) {
	if len(m.ClearanceEntries) == 0 {
		return nil, nil
	}
	var entries []ClearanceEntry
	if err := json.Unmarshal(m.ClearanceEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (m *ClearanceModel) SetEntries(entries []ClearanceEntry) error {
	if entries == nil {
		entries = []ClearanceEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	m.ClearanceEntries = datatypes.JSON(b)
	return nil
}
