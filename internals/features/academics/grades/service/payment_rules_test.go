package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/features/academics/grades/model"
)

func newRecord() model.GradeRecordModel {
	return model.GradeRecordModel{
		GradeRecordStudentID: "2021-00123",
		PaymentMidterms:      model.PaymentPending,
		PaymentFinals:        model.PaymentPending,
	}
}

func TestApplyPaymentStatus_AccessFollowsPayment(t *testing.T) {
	rec := newRecord()

	require.NoError(t, ApplyPaymentStatus(&rec, model.TermMidterms, model.PaymentPaid))
	assert.Equal(t, model.PaymentPaid, rec.PaymentMidterms)
	assert.True(t, rec.AccessMidterms)

	require.NoError(t, ApplyPaymentStatus(&rec, model.TermMidterms, model.PaymentPending))
	assert.Equal(t, model.PaymentPending, rec.PaymentMidterms)
	assert.False(t, rec.AccessMidterms)
}

func TestApplyPaymentStatus_FinalsRequiresMidtermsPaid(t *testing.T) {
	rec := newRecord()

	err := ApplyPaymentStatus(&rec, model.TermFinals, model.PaymentPaid)
	require.ErrorIs(t, err, ErrFinalsBeforeMidterms)

	// no mutation on rejection
	assert.Equal(t, model.PaymentPending, rec.PaymentFinals)
	assert.False(t, rec.AccessFinals)

	require.NoError(t, ApplyPaymentStatus(&rec, model.TermMidterms, model.PaymentPaid))
	require.NoError(t, ApplyPaymentStatus(&rec, model.TermFinals, model.PaymentPaid))
	assert.True(t, rec.AccessFinals)
}

func TestApplyPaymentStatus_FinalsPendingAllowedAnyTime(t *testing.T) {
	rec := newRecord()

	require.NoError(t, ApplyPaymentStatus(&rec, model.TermFinals, model.PaymentPending))
	assert.Equal(t, model.PaymentPending, rec.PaymentFinals)
	assert.False(t, rec.AccessFinals)
}

func TestApplyPaymentStatus_RejectsBadEnums(t *testing.T) {
	rec := newRecord()

	assert.ErrorIs(t, ApplyPaymentStatus(&rec, "prelims", model.PaymentPaid), ErrInvalidTerm)
	assert.ErrorIs(t, ApplyPaymentStatus(&rec, model.TermMidterms, "Settled"), ErrInvalidPaymentStatus)
}

func TestUpsertGradeEntry(t *testing.T) {
	entries := []model.GradeEntry{
		{StudentID: "2021-00123", Grade: 2.5},
		{StudentID: "2021-00456", Grade: 1.7},
	}

	entries = UpsertGradeEntry(entries, "2021-00123", 3.0)
	require.Len(t, entries, 2)
	assert.Equal(t, 3.0, entries[0].Grade)
	assert.Equal(t, "2021-00123", entries[0].StudentID)

	entries = UpsertGradeEntry(entries, "2021-00789", 2.1)
	require.Len(t, entries, 3)
	assert.Equal(t, "2021-00789", entries[2].StudentID)
}

func TestFindGradeEntry(t *testing.T) {
	entries := []model.GradeEntry{{StudentID: "2021-00123", Grade: 2.5}}

	entry, ok := FindGradeEntry(entries, "2021-00123")
	require.True(t, ok)
	assert.Equal(t, 2.5, entry.Grade)

	_, ok = FindGradeEntry(entries, "2021-09999")
	assert.False(t, ok)
}
