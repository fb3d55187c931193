package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGradeRows(t *testing.T) {
	csv := "edpCode,studentId,grade\n" +
		"10231,2021-00123,2.5\n" +
		"10231,,1.7\n" +
		"10232,2021-00456,3.1\n"

	rows, err := ReadGradeRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, GradeRow{EdpCode: "10231", StudentID: "2021-00123", Grade: "2.5"}, rows[0])
	assert.Equal(t, "", rows[1].StudentID)
}

func TestReadGradeRows_HeaderOnly(t *testing.T) {
	rows, err := ReadGradeRows(strings.NewReader("edpCode,studentId,grade\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadGradeRows_ShortRecords(t *testing.T) {
	rows, err := ReadGradeRows(strings.NewReader("edpCode,studentId,grade\n10231\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10231", rows[0].EdpCode)
	assert.Equal(t, "", rows[0].StudentID)
	assert.Equal(t, "", rows[0].Grade)
}

func TestImportGrades_CountsFailedRows(t *testing.T) {
	csv := "edpCode,studentId,grade\n" +
		"10231,2021-00123,2.5\n" +
		"10231,,1.7\n" +
		"10232,2021-00456,3.1\n"

	rows, err := ReadGradeRows(strings.NewReader(csv))
	require.NoError(t, err)

	var upserted []GradeRow
	result := ImportGrades(rows, func(row GradeRow, grade float64) error {
		upserted = append(upserted, row)
		return nil
	})

	assert.Equal(t, 3, result.TotalProcessed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Missing required fields", result.Errors[0].Error)
	assert.Len(t, upserted, 2)
}

func TestImportGrades_UpsertErrorDoesNotStopTheLoop(t *testing.T) {
	rows := []GradeRow{
		{EdpCode: "10231", StudentID: "2021-00123", Grade: "2.5"},
		{EdpCode: "10231", StudentID: "2021-00456", Grade: "1.7"},
	}

	calls := 0
	result := ImportGrades(rows, func(row GradeRow, grade float64) error {
		calls++
		if row.StudentID == "2021-00123" {
			return assert.AnError
		}
		return nil
	})

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, result.TotalProcessed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "2021-00123", result.Errors[0].Row.StudentID)
}

func TestValidateGradeRow(t *testing.T) {
	grade, reason := ValidateGradeRow(GradeRow{EdpCode: "10231", StudentID: "2021-00123", Grade: "2.5"})
	assert.Empty(t, reason)
	assert.Equal(t, 2.5, grade)

	_, reason = ValidateGradeRow(GradeRow{EdpCode: "10231", Grade: "2.5"})
	assert.Equal(t, "Missing required fields", reason)

	_, reason = ValidateGradeRow(GradeRow{EdpCode: "10231", StudentID: "2021-00123", Grade: "INC"})
	assert.Equal(t, "Grade is not a number", reason)
}
