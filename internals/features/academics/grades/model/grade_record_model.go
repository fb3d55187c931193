package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment terms (lowercase, as the accounting office submits them).
const (
	TermMidterms = "midterms"
	TermFinals   = "finals"
)

// Payment statuses.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// GradeRecordModel carries the per-student payment status and the derived
// grade-access flags. Access is never written directly; it always follows
// the payment status for the same term.
type GradeRecordModel struct {
	GradeRecordID        uuid.UUID `gorm:"column:grade_record_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"grade_record_id"`
	GradeRecordStudentID string    `gorm:"column:grade_record_student_id;type:varchar(30);uniqueIndex;not null" json:"grade_record_student_id"`
	PaymentMidterms      string    `gorm:"column:grade_record_payment_midterms;type:varchar(10);not null;default:Pending" json:"payment_midterms"`
	PaymentFinals        string    `gorm:"column:grade_record_payment_finals;type:varchar(10);not null;default:Pending" json:"payment_finals"`
	AccessMidterms       bool      `gorm:"column:grade_record_access_midterms;not null;default:false" json:"access_midterms"`
	AccessFinals         bool      `gorm:"column:grade_record_access_finals;not null;default:false" json:"access_finals"`
	GradeRecordCreatedAt time.Time `gorm:"column:grade_record_created_at;autoCreateTime" json:"grade_record_created_at"`
	GradeRecordUpdatedAt time.Time `gorm:"column:grade_record_updated_at;autoUpdateTime" json:"grade_record_updated_at"`
}

func (GradeRecordModel) TableName() string {
	return "grade_records"
}

// AccessForTerm reads the access flag for a payment-term key.
func (g *GradeRecordModel) AccessForTerm(term string) bool {
	if term == TermFinals {
		return g.AccessFinals
	}
	return g.AccessMidterms
}
