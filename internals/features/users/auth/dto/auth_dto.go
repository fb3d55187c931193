package dto

// LoginRequest authenticates by role + institutional ID, not email.
type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student teacher admin"`
}

type LoginResponse struct {
	UserID        string  `json:"user_id"`
	Role          string  `json:"role"`
	StudentID     *string `json:"student_id,omitempty"`
	FacultyID     *string `json:"faculty_id,omitempty"`
	AdminID       *string `json:"admin_id,omitempty"`
	AdminPosition *string `json:"admin_position,omitempty"`
	Token         string  `json:"token"`
}
