package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/features/academics/clearance/model"
)

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(model.StatusPending))
	assert.True(t, IsValidStatus(model.StatusCleared))
	assert.True(t, IsValidStatus(model.StatusRejected))
	assert.False(t, IsValidStatus("Approved"))
	assert.False(t, IsValidStatus(""))
}

func TestUpsertEntry_ReplacesInPlace(t *testing.T) {
	entries := []model.ClearanceEntry{
		{CourseCode: "CS101", TeacherID: "F-001", Status: model.StatusPending},
		{CourseCode: "CS102", TeacherID: "F-002", Status: model.StatusCleared},
	}

	entries = UpsertEntry(entries, model.ClearanceEntry{
		CourseCode: "CS101",
		TeacherID:  "F-003",
		Status:     model.StatusCleared,
		Remarks:    "All requirements submitted",
	})

	require.Len(t, entries, 2)
	// replace, not merge: every field overwritten, index kept
	assert.Equal(t, "F-003", entries[0].TeacherID)
	assert.Equal(t, model.StatusCleared, entries[0].Status)
	assert.Equal(t, "All requirements submitted", entries[0].Remarks)
}

func TestUpsertEntry_AppendsWhenNew(t *testing.T) {
	entries := UpsertEntry(nil, model.ClearanceEntry{
		CourseCode: "CS101",
		TeacherID:  "F-001",
		Status:     model.StatusPending,
	})
	require.Len(t, entries, 1)
	assert.Equal(t, "CS101", entries[0].CourseCode)
}

func TestAllCleared(t *testing.T) {
	entries := []model.ClearanceEntry{
		{CourseCode: "CS101", Status: model.StatusCleared},
		{CourseCode: "CS102", Status: model.StatusPending},
	}
	assert.False(t, AllCleared(entries))

	entries[1].Status = model.StatusCleared
	assert.True(t, AllCleared(entries))

	// a later rejection makes the list not-all-cleared again; reverting the
	// already-cascaded enrollment is deliberately nobody's job
	entries[0].Status = model.StatusRejected
	assert.False(t, AllCleared(entries))
}
