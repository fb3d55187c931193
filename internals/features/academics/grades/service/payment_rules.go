package service

import (
	"errors"

	"campushub_backend/internals/features/academics/grades/model"
)

var (
	ErrInvalidTerm          = errors.New(`Invalid term. Must be either "midterms" or "finals"`)
	ErrInvalidPaymentStatus = errors.New(`Invalid status. Must be either "Pending" or "Paid"`)
	ErrFinalsBeforeMidterms = errors.New(`Cannot update finals payment status to "Paid" if midterms payment is still "Pending"`)
)

// ApplyPaymentStatus mutates rec in place. A student may not settle finals
// before midterms; there is no constraint the other way around. Access is
// derived from the new status and never set independently.
func ApplyPaymentStatus(rec *model.GradeRecordModel, term, status string) error {
	if term != model.TermMidterms && term != model.TermFinals {
		return ErrInvalidTerm
	}
	if status != model.PaymentPending && status != model.PaymentPaid {
		return ErrInvalidPaymentStatus
	}

	if term == model.TermFinals && status == model.PaymentPaid && rec.PaymentMidterms != model.PaymentPaid {
		return ErrFinalsBeforeMidterms
	}

	granted := status == model.PaymentPaid
	if term == model.TermMidterms {
		rec.PaymentMidterms = status
		rec.AccessMidterms = granted
	} else {
		rec.PaymentFinals = status
		rec.AccessFinals = granted
	}
	return nil
}

// UpsertGradeEntry replaces the grade for studentID if present, else appends.
func UpsertGradeEntry(entries []model.GradeEntry, studentID string, grade float64) []model.GradeEntry {
	for i := range entries {
		if entries[i].StudentID == studentID {
			entries[i].Grade = grade
			return entries
		}
	}
	return append(entries, model.GradeEntry{StudentID: studentID, Grade: grade})
}

// FindGradeEntry returns the entry for studentID, if any.
func FindGradeEntry(entries []model.GradeEntry, studentID string) (model.GradeEntry, bool) {
	for _, e := range entries {
		if e.StudentID == studentID {
			return e, true
		}
	}
	return model.GradeEntry{}, false
}
