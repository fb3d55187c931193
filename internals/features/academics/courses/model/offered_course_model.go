package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OfferedCourseModel is one scheduled offering of a course; the edpCode is
// the globally unique handle every grade upload refers to.
type OfferedCourseModel struct {
	OfferedCourseID         uuid.UUID      `gorm:"column:offered_course_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"offered_course_id"`
	OfferedCourseEdpCode    string         `gorm:"column:offered_course_edp_code;type:varchar(20);uniqueIndex;not null" json:"offered_course_edp_code"`
	OfferedCourseCourseCode string         `gorm:"column:offered_course_course_code;type:varchar(30);not null" json:"offered_course_course_code"`
	OfferedCourseDay        string         `gorm:"column:offered_course_day;type:varchar(5)" json:"offered_course_day"` // M T W Th F Sat Sun
	OfferedCourseTime       string         `gorm:"column:offered_course_time;type:varchar(30)" json:"offered_course_time"`
	OfferedCourseRoom       string         `gorm:"column:offered_course_room;type:varchar(30)" json:"offered_course_room"`
	OfferedCourseTeacherID  string         `gorm:"column:offered_course_teacher_id;type:varchar(30);index" json:"offered_course_teacher_id"`
	StudentsEnrolled        pq.StringArray `gorm:"column:offered_course_students_enrolled;type:text[]" json:"offered_course_students_enrolled,omitempty"`
	OfferedCourseCreatedAt  time.Time      `gorm:"column:offered_course_created_at;autoCreateTime" json:"offered_course_created_at"`
}

func (OfferedCourseModel) TableName() string {
	return "offered_courses"
}
