package dto

import (
	"time"

	"gorm.io/datatypes"

	"campushub_backend/internals/features/users/user/model"
)

// ====================
// Response DTO
// ====================
type UserDTO struct {
	UserID            string         `json:"user_id"`
	UserName          string         `json:"user_name"`
	UserEmail         string         `json:"user_email"`
	UserRole          string         `json:"user_role"`
	UserIsActive      bool           `json:"user_is_active"`
	UserStudentID     *string        `json:"user_student_id,omitempty"`
	UserFacultyID     *string        `json:"user_faculty_id,omitempty"`
	UserAdminID       *string        `json:"user_admin_id,omitempty"`
	UserAdminPosition *string        `json:"user_admin_position,omitempty"`
	UserStudentInfo   datatypes.JSON `json:"user_student_info,omitempty"`
	UserTeacherInfo   datatypes.JSON `json:"user_teacher_info,omitempty"`
	UserCreatedAt     time.Time      `json:"user_created_at"`
}

// ====================
// Request DTO
// ====================
type RegisterUserRequest struct {
	UserName      string             `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail     string             `json:"user_email" validate:"required,email"`
	UserPassword  string             `json:"user_password" validate:"required,min=8"`
	UserRole      string             `json:"user_role" validate:"required,oneof=student teacher admin"`
	StudentID     *string            `json:"student_id,omitempty"`
	FacultyID     *string            `json:"faculty_id,omitempty"`
	AdminID       *string            `json:"admin_id,omitempty"`
	AdminPosition *string            `json:"admin_position,omitempty" validate:"omitempty,oneof=mis registrar accounting"`
	StudentInfo   *model.StudentInfo `json:"student_info,omitempty"`
	TeacherInfo   *model.TeacherInfo `json:"teacher_info,omitempty"`
}

type UpdateUserRequest struct {
	UserName      *string            `json:"user_name,omitempty" validate:"omitempty,min=2,max=100"`
	UserPassword  *string            `json:"user_password,omitempty" validate:"omitempty,min=8"`
	UserRole      *string            `json:"user_role,omitempty" validate:"omitempty,oneof=student teacher admin"`
	UserIsActive  *bool              `json:"user_is_active,omitempty"`
	StudentID     *string            `json:"student_id,omitempty"`
	FacultyID     *string            `json:"faculty_id,omitempty"`
	AdminID       *string            `json:"admin_id,omitempty"`
	AdminPosition *string            `json:"admin_position,omitempty" validate:"omitempty,oneof=mis registrar accounting"`
	StudentInfo   *model.StudentInfo `json:"student_info,omitempty"`
	TeacherInfo   *model.TeacherInfo `json:"teacher_info,omitempty"`
}

// Students may only touch contact info, address and their password.
type UpdateStudentProfileRequest struct {
	Password           *string                    `json:"password,omitempty" validate:"omitempty,min=8"`
	ContactInformation []model.ContactInformation `json:"contact_information,omitempty"`
	Address            []model.AddressInfo        `json:"address,omitempty"`
}

// ====================
// Converter
// ====================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:            m.UserID.String(),
		UserName:          m.UserName,
		UserEmail:         m.UserEmail,
		UserRole:          m.UserRole,
		UserIsActive:      m.UserIsActive,
		UserStudentID:     m.UserStudentID,
		UserFacultyID:     m.UserFacultyID,
		UserAdminID:       m.UserAdminID,
		UserAdminPosition: m.UserAdminPosition,
		UserStudentInfo:   m.UserStudentInfo,
		UserTeacherInfo:   m.UserTeacherInfo,
		UserCreatedAt:     m.UserCreatedAt,
	}
}
