package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Enrollment statuses. "Cleared" is written by the clearance cascade once
// every course clearance for the student is Cleared; it is never reverted.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
	StatusCleared  = "Cleared"
)

type EnrollmentModel struct {
	EnrollmentID        uuid.UUID      `gorm:"column:enrollment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"enrollment_id"`
	EnrollmentStudentID string         `gorm:"column:enrollment_student_id;type:varchar(30);uniqueIndex;not null" json:"enrollment_student_id"`
	EnrollmentCourses   pq.StringArray `gorm:"column:enrollment_courses;type:text[]" json:"enrollment_courses"` // edpCodes
	EnrollmentStatus    string         `gorm:"column:enrollment_status;type:varchar(20);not null;default:Pending" json:"enrollment_status"`
	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
