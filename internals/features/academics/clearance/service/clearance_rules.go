package service

import (
	"campushub_backend/internals/features/academics/clearance/model"
)

// IsValidStatus checks the clearance status enum.
func IsValidStatus(status string) bool {
	return status == model.StatusPending ||
		status == model.StatusCleared ||
		status == model.StatusRejected
}

// UpsertEntry replaces the entry matching entry.CourseCode in place, else
// appends. Replace, not merge: teacherId, status and remarks are all
// overwritten together.
func UpsertEntry(entries []model.ClearanceEntry, entry model.ClearanceEntry) []model.ClearanceEntry {
	for i := range entries {
		if entries[i].CourseCode == entry.CourseCode {
			entries[i] = entry
			return entries
		}
	}
	return append(entries, entry)
}

// AllCleared rescans the full list; the cascade runs it after every
// Cleared write rather than tracking incrementally.
func AllCleared(entries []model.ClearanceEntry) bool {
	for _, e := range entries {
		if e.Status != model.StatusCleared {
			return false
		}
	}
	return true
}
