package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/features/academics/evaluation/model"
)

func TestDeriveAutoRemarks(t *testing.T) {
	// GPA scale: lower is better, 3.0 is the last passing mark
	assert.Equal(t, model.RemarksPassed, DeriveAutoRemarks(1.0))
	assert.Equal(t, model.RemarksPassed, DeriveAutoRemarks(3.0))
	assert.Equal(t, model.RemarksFailed, DeriveAutoRemarks(3.5))
	assert.Equal(t, model.RemarksFailed, DeriveAutoRemarks(5.0))
}

func TestDeriveManualRemarks(t *testing.T) {
	// percentage scale: higher is better, 75 passes
	assert.Equal(t, model.RemarksPassed, DeriveManualRemarks(75))
	assert.Equal(t, model.RemarksPassed, DeriveManualRemarks(98.5))
	assert.Equal(t, model.RemarksFailed, DeriveManualRemarks(74.9))
	assert.Equal(t, model.RemarksFailed, DeriveManualRemarks(0))
}

func TestUpsertCourseEntry(t *testing.T) {
	courses := []model.CourseEntry{
		{CourseCode: "CS101", FinalGrade: 2.5, Remarks: model.RemarksPassed},
	}

	courses = UpsertCourseEntry(courses, model.CourseEntry{
		CourseCode: "CS101", FinalGrade: 4.0, Remarks: model.RemarksFailed,
	})
	require.Len(t, courses, 1)
	assert.Equal(t, 4.0, courses[0].FinalGrade)
	assert.Equal(t, model.RemarksFailed, courses[0].Remarks)

	courses = UpsertCourseEntry(courses, model.CourseEntry{
		CourseCode: "CS102", FinalGrade: 1.2, Remarks: model.RemarksPassed,
	})
	require.Len(t, courses, 2)
}

func TestRemoveCourseEntry(t *testing.T) {
	courses := []model.CourseEntry{
		{CourseCode: "CS101"},
		{CourseCode: "CS102"},
	}

	courses, removed := RemoveCourseEntry(courses, "CS101")
	assert.True(t, removed)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS102", courses[0].CourseCode)

	courses, removed = RemoveCourseEntry(courses, "CS999")
	assert.False(t, removed)
	assert.Len(t, courses, 1)
}

func TestComputeStatistics(t *testing.T) {
	courses := []model.CourseEntry{
		{CourseCode: "CS101", Remarks: model.RemarksPassed},
		{CourseCode: "CS102", Remarks: model.RemarksPassed},
		{CourseCode: "CS103", Remarks: model.RemarksFailed},
	}
	units := map[string]int{"CS101": 3, "CS102": 5, "CS103": 3}

	stats := ComputeStatistics(courses, units)
	assert.Equal(t, 3, stats.TotalCourses)
	assert.Equal(t, 2, stats.PassedCourses)
	// failed courses contribute no units
	assert.Equal(t, 8, stats.TotalUnits)
	assert.Equal(t, 66.67, stats.CompletionRate)
}

func TestComputeStatistics_UnknownCourseCountsZeroUnits(t *testing.T) {
	courses := []model.CourseEntry{
		{CourseCode: "CS101", Remarks: model.RemarksPassed},
	}
	stats := ComputeStatistics(courses, nil)
	assert.Equal(t, 1, stats.PassedCourses)
	assert.Equal(t, 0, stats.TotalUnits)
	assert.Equal(t, 100.0, stats.CompletionRate)
}

func TestComputeStatistics_NoCourses(t *testing.T) {
	stats := ComputeStatistics(nil, nil)
	assert.Equal(t, 0, stats.TotalCourses)
	assert.Equal(t, 0.0, stats.CompletionRate)
}
