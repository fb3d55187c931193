package service

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// GradeRow is one data row of a bulk upload, raw strings as read.
type GradeRow struct {
	EdpCode   string `json:"edp_code"`
	StudentID string `json:"student_id"`
	Grade     string `json:"grade"`
}

// RowError records a row that was skipped; the import keeps going.
type RowError struct {
	Row   GradeRow `json:"row"`
	Error string   `json:"error"`
}

// ImportResult reports every data row seen, including the failed ones.
// Partial failure is the contract: nothing is rolled back.
type ImportResult struct {
	TotalProcessed int        `json:"total_processed"`
	Errors         []RowError `json:"errors"`
}

// ReadGradeRows parses the uploaded CSV. The first record is the header
// (edpCode,studentId,grade); column order is fixed, extra columns ignored.
func ReadGradeRows(r io.Reader) ([]GradeRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}

	rows := make([]GradeRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := GradeRow{}
		if len(rec) > 0 {
			row.EdpCode = strings.TrimSpace(rec[0])
		}
		if len(rec) > 1 {
			row.StudentID = strings.TrimSpace(rec[1])
		}
		if len(rec) > 2 {
			row.Grade = strings.TrimSpace(rec[2])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ImportGrades runs every row through validation and the given upsert.
// TotalProcessed counts every data row, failed ones included; a failed
// row is recorded and the loop moves on.
func ImportGrades(rows []GradeRow, upsert func(row GradeRow, grade float64) error) ImportResult {
	result := ImportResult{TotalProcessed: len(rows), Errors: []RowError{}}
	for _, row := range rows {
		grade, reason := ValidateGradeRow(row)
		if reason != "" {
			result.Errors = append(result.Errors, RowError{Row: row, Error: reason})
			continue
		}
		if err := upsert(row, grade); err != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Error: err.Error()})
		}
	}
	return result
}

// ValidateGradeRow checks the three required fields and parses the grade.
func ValidateGradeRow(row GradeRow) (float64, string) {
	if row.EdpCode == "" || row.StudentID == "" || row.Grade == "" {
		return 0, "Missing required fields"
	}
	grade, err := strconv.ParseFloat(row.Grade, 64)
	if err != nil {
		return 0, "Grade is not a number"
	}
	return grade, ""
}
