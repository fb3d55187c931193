package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "campushub_backend/internals/helpers"
)

func TestUploadStudentGradeRequest_ZeroGradeIsValid(t *testing.T) {
	req := UploadStudentGradeRequest{
		EdpCode:   "10001",
		StudentID: "2024-00001",
		Grade:     0,
		Term:      "Midterms",
	}
	assert.NoError(t, helper.Validate(&req))
}

func TestUploadStudentGradeRequest_Invalid(t *testing.T) {
	req := UploadStudentGradeRequest{
		EdpCode:   "10001",
		StudentID: "2024-00001",
		Grade:     -0.5,
		Term:      "Midterms",
	}
	assert.Error(t, helper.Validate(&req), "negative grade")

	req.Grade = 2.5
	req.Term = "midterms"
	assert.Error(t, helper.Validate(&req), "term must be capitalized")

	req.Term = "Finals"
	assert.NoError(t, helper.Validate(&req))
}
