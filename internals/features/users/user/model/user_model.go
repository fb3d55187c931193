package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(100)" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);uniqueIndex;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null" json:"user_role"`
	UserIsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	// Role-specific identifiers; exactly one is populated per role.
	UserStudentID *string `gorm:"column:user_student_id;type:varchar(30);uniqueIndex" json:"user_student_id,omitempty"`
	UserFacultyID *string `gorm:"column:user_faculty_id;type:varchar(30);uniqueIndex" json:"user_faculty_id,omitempty"`
	UserAdminID   *string `gorm:"column:user_admin_id;type:varchar(30);uniqueIndex" json:"user_admin_id,omitempty"`

	// mis / registrar / accounting, admins only
	UserAdminPosition *string `gorm:"column:user_admin_position;type:varchar(20)" json:"user_admin_position,omitempty"`

	UserStudentInfo datatypes.JSON `gorm:"column:user_student_info;type:jsonb" json:"user_student_info,omitempty"`
	UserTeacherInfo datatypes.JSON `gorm:"column:user_teacher_info;type:jsonb" json:"user_teacher_info,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

// TableName overrides the table name used by GORM
func (UserModel) TableName() string {
	return "users"
}

// RoleIdentifier returns the identifier matching the user's role.
func (u *UserModel) RoleIdentifier() string {
	switch {
	case u.UserStudentID != nil:
		return *u.UserStudentID
	case u.UserFacultyID != nil:
		return *u.UserFacultyID
	case u.UserAdminID != nil:
		return *u.UserAdminID
	}
	return ""
}
