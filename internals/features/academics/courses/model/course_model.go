package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type DepartmentModel struct {
	DepartmentID   uuid.UUID      `gorm:"column:department_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"department_id"`
	DepartmentCode string         `gorm:"column:department_code;type:varchar(20);uniqueIndex;not null" json:"department_code"`
	DepartmentName string         `gorm:"column:department_name;type:varchar(150);not null" json:"department_name"`
	DepartmentHead string         `gorm:"column:department_head;type:varchar(100)" json:"department_head"`
	Programs       datatypes.JSON `gorm:"column:department_programs;type:jsonb" json:"department_programs,omitempty"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

type CourseModel struct {
	CourseID            uuid.UUID      `gorm:"column:course_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"course_id"`
	CourseCode          string         `gorm:"column:course_code;type:varchar(30);uniqueIndex;not null" json:"course_code"`
	CourseName          string         `gorm:"column:course_name;type:varchar(150);not null" json:"course_name"`
	CourseUnits         int            `gorm:"column:course_units;not null;default:0" json:"course_units"`
	CoursePrerequisites pq.StringArray `gorm:"column:course_prerequisites;type:text[]" json:"course_prerequisites,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
