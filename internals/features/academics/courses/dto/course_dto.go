package dto

import (
	"campushub_backend/internals/features/academics/courses/model"
)

// ====================
// Request DTO
// ====================
type CreateCourseRequest struct {
	CourseCode          string   `json:"course_code" validate:"required,max=30"`
	CourseName          string   `json:"course_name" validate:"required,max=150"`
	CourseUnits         int      `json:"course_units" validate:"required,min=1"`
	CoursePrerequisites []string `json:"course_prerequisites,omitempty"`
}

type CreateOfferingRequest struct {
	EdpCode    string `json:"edp_code" validate:"required,max=20"`
	CourseCode string `json:"course_code" validate:"required,max=30"`
	Day        string `json:"day" validate:"omitempty,oneof=M T W Th F Sat Sun"`
	Time       string `json:"time,omitempty"`
	Room       string `json:"room,omitempty"`
	TeacherID  string `json:"teacher_id" validate:"required,max=30"`
}

// ====================
// Response DTO
// ====================
type OfferingDTO struct {
	EdpCode          string   `json:"edp_code"`
	CourseCode       string   `json:"course_code"`
	Day              string   `json:"day,omitempty"`
	Time             string   `json:"time,omitempty"`
	Room             string   `json:"room,omitempty"`
	TeacherID        string   `json:"teacher_id"`
	StudentsEnrolled []string `json:"students_enrolled"`
}

// ====================
// Converter
// ====================
func ToOfferingDTO(m model.OfferedCourseModel) OfferingDTO {
	return OfferingDTO{
		EdpCode:          m.OfferedCourseEdpCode,
		CourseCode:       m.OfferedCourseCourseCode,
		Day:              m.OfferedCourseDay,
		Time:             m.OfferedCourseTime,
		Room:             m.OfferedCourseRoom,
		TeacherID:        m.OfferedCourseTeacherID,
		StudentsEnrolled: m.StudentsEnrolled,
	}
}
