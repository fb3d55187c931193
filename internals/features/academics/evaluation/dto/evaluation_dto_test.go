package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "campushub_backend/internals/helpers"
)

func TestManualUpdateEvaluationRequest_ZeroGradeIsValid(t *testing.T) {
	req := ManualUpdateEvaluationRequest{
		StudentID: "2024-00001",
		Courses: []ManualEvaluationCourse{
			{CourseCode: "CS101", FinalGrade: 0},
		},
	}
	assert.NoError(t, helper.Validate(&req))
}

func TestManualUpdateEvaluationRequest_Bounds(t *testing.T) {
	req := ManualUpdateEvaluationRequest{
		StudentID: "2024-00001",
		Courses: []ManualEvaluationCourse{
			{CourseCode: "CS101", FinalGrade: 100.5},
		},
	}
	assert.Error(t, helper.Validate(&req))

	req.Courses[0].FinalGrade = -1
	assert.Error(t, helper.Validate(&req))

	req.Courses[0].FinalGrade = 100
	assert.NoError(t, helper.Validate(&req))
}

func TestManualUpdateEvaluationRequest_RequiresCourses(t *testing.T) {
	req := ManualUpdateEvaluationRequest{StudentID: "2024-00001"}
	assert.Error(t, helper.Validate(&req))

	req.Courses = []ManualEvaluationCourse{{FinalGrade: 80}}
	assert.Error(t, helper.Validate(&req), "course_code is required")
}
