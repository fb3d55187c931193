package constants

import "fmt"

// Roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Admin positions
const (
	PositionMIS        = "mis"
	PositionRegistrar  = "registrar"
	PositionAccounting = "accounting"
)

// Role error message templates
const (
	ErrOnlyStudentsCanAccess = "Only students may access %s."
	ErrOnlyTeachersCanAccess = "Only teachers may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
	ErrOnlyPositionCanAccess = "Only %s admins may access %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func PositionError(position, feature string) string {
	return fmt.Sprintf(ErrOnlyPositionCanAccess, position, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	TeacherOnly = []string{
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentAndAdmin = []string{
		RoleStudent,
		RoleAdmin,
	}

	AllPositions = []string{
		PositionMIS,
		PositionRegistrar,
		PositionAccounting,
	}
)
