package service

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"campushub_backend/internals/features/academics/evaluation/model"
)

// Two grading scales feed this ledger and they are NOT the same:
// teachers finalize on the GPA scale where lower is better and 3.0 is the
// last passing mark, while the registrar encodes transcripts on the
// percentage scale where 75 passes. Both are kept; do not unify.
const (
	AutoPassingGrade   = 3.0
	ManualPassingGrade = 75.0
)

// DeriveAutoRemarks: GPA scale, lower is better.
func DeriveAutoRemarks(finalGrade float64) string {
	if finalGrade <= AutoPassingGrade {
		return model.RemarksPassed
	}
	return model.RemarksFailed
}

// DeriveManualRemarks: percentage scale, higher is better.
func DeriveManualRemarks(finalGrade float64) string {
	if finalGrade >= ManualPassingGrade {
		return model.RemarksPassed
	}
	return model.RemarksFailed
}

// UpsertCourseEntry replaces the entry matching entry.CourseCode in place,
// else appends. Full replace, not a merge.
func UpsertCourseEntry(courses []model.CourseEntry, entry model.CourseEntry) []model.CourseEntry {
	for i := range courses {
		if courses[i].CourseCode == entry.CourseCode {
			courses[i] = entry
			return courses
		}
	}
	return append(courses, entry)
}

// RemoveCourseEntry drops the entry with the exact courseCode. Removal does
// not cascade anywhere.
func RemoveCourseEntry(courses []model.CourseEntry, courseCode string) ([]model.CourseEntry, bool) {
	out := courses[:0]
	removed := false
	for _, c := range courses {
		if c.CourseCode == courseCode {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out, removed
}

// Statistics is the read-only summary of an evaluation.
type Statistics struct {
	TotalCourses   int     `json:"total_courses"`
	PassedCourses  int     `json:"passed_courses"`
	TotalUnits     int     `json:"total_units"`
	CompletionRate float64 `json:"completion_rate"`
}

// ComputeStatistics sums units over passed courses only; a course missing
// from unitsByCourse counts zero units. With no courses the completion
// rate is 0, not NaN.
func ComputeStatistics(courses []model.CourseEntry, unitsByCourse map[string]int) Statistics {
	stats := Statistics{}
	for _, c := range courses {
		stats.TotalCourses++
		if c.Remarks == model.RemarksPassed {
			stats.PassedCourses++
			stats.TotalUnits += unitsByCourse[c.CourseCode]
		}
	}
	if stats.TotalCourses > 0 {
		rate := float64(stats.PassedCourses) / float64(stats.TotalCourses) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}
	return stats
}

// AutoUpdateEvaluation is the automatic path: invoked when a final grade is
// finalized by a Finals upload. Find-or-create the student's record, derive
// remarks on the GPA scale, upsert by courseCode.
func AutoUpdateEvaluation(db *gorm.DB, studentID, courseCode string, finalGrade float64) error {
	var evaluation model.EvaluationModel
	err := db.Where("evaluation_student_id = ?", studentID).First(&evaluation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		evaluation = model.EvaluationModel{EvaluationStudentID: studentID}
	} else if err != nil {
		return err
	}

	courses, err := evaluation.Courses()
	if err != nil {
		return err
	}
	courses = UpsertCourseEntry(courses, model.CourseEntry{
		CourseCode: courseCode,
		FinalGrade: finalGrade,
		Remarks:    DeriveAutoRemarks(finalGrade),
	})
	if err := evaluation.SetCourses(courses); err != nil {
		return err
	}
	return db.Save(&evaluation).Error
}
