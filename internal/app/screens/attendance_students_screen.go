package screens

import (
	"context"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// AttendanceStudentsScreen manages the per-student status rows of one
// saved attendance, letting the teacher flip a mark after the fact.
type AttendanceStudentsScreen struct {
	service      services.AttendanceStudentService
	attendanceID int64

	records    []models.AttendanceStudentRecord
	search     string
	selectedID int64
}

// NewAttendanceStudentsScreen creates a controller bound to one attendance
func NewAttendanceStudentsScreen(service services.AttendanceStudentService, attendanceID int64) *AttendanceStudentsScreen {
	return &AttendanceStudentsScreen{service: service, attendanceID: attendanceID}
}

// Load replaces the in-memory list wholesale from storage.
func (s *AttendanceStudentsScreen) Load(ctx context.Context) error {
	records, err := s.service.GetByAttendance(ctx, s.attendanceID)
	if err != nil {
		return err
	}
	s.records = records
	return nil
}

// Filtered returns the records whose student name matches the search string.
func (s *AttendanceStudentsScreen) Filtered() []models.AttendanceStudentRecord {
	filtered := make([]models.AttendanceStudentRecord, 0, len(s.records))
	for _, record := range s.records {
		if matchesSearch(s.search, record.StudentName) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// SetSearch updates the search string
func (s *AttendanceStudentsScreen) SetSearch(search string) { s.search = search }

// ToggleSelected selects the row, or clears the selection when the same
// row is tapped again.
func (s *AttendanceStudentsScreen) ToggleSelected(id int64) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	s.selectedID = id
}

// SelectedID returns the currently selected row id, 0 when none
func (s *AttendanceStudentsScreen) SelectedID() int64 { return s.selectedID }

// UpdateStatus flips a student's mark on this attendance then reloads the list
func (s *AttendanceStudentsScreen) UpdateStatus(ctx context.Context, id, studentID int64, status models.AttendanceStatus) error {
	record := &models.AttendanceStudent{
		ID:           id,
		AttendanceID: s.attendanceID,
		StudentID:    studentID,
		Status:       status,
	}
	if err := s.service.UpdateAttendanceStudent(ctx, record); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes a status row then reloads the list
func (s *AttendanceStudentsScreen) Delete(ctx context.Context, id int64) error {
	if err := s.service.DeleteAttendanceStudent(ctx, id); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = 0
	}
	return s.Load(ctx)
}
