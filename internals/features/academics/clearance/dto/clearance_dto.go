package dto

import (
	"time"

	"campushub_backend/internals/features/academics/clearance/model"
)

// ====================
// Request DTO
// ====================
type SetClearanceRequest struct {
	Status  string `json:"status" validate:"required,oneof=Pending Cleared Rejected"`
	Remarks string `json:"remarks,omitempty"`
}

// ====================
// Response DTO
// ====================
type ClearanceDTO struct {
	ClearanceID string                 `json:"clearance_id"`
	StudentID   string                 `json:"student_id"`
	Entries     []model.ClearanceEntry `json:"clearances"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ====================
// Converter
// ====================
func ToClearanceDTO(m model.ClearanceModel, entries []model.ClearanceEntry) ClearanceDTO {
	if entries == nil {
		entries = []model.ClearanceEntry{}
	}
	return ClearanceDTO{
		ClearanceID: m.ClearanceID.String(),
		StudentID:   m.ClearanceStudentID,
		Entries:     entries,
		CreatedAt:   m.ClearanceCreatedAt,
		UpdatedAt:   m.ClearanceUpdatedAt,
	}
}
