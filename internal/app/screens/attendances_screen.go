package screens

import (
	"context"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// AttendancesScreen manages the roll-call event list of one classroom.
type AttendancesScreen struct {
	service     services.AttendanceService
	classroomID int64

	attendances []models.Attendance
	search      string
	selectedID  int64
}

// NewAttendancesScreen creates an attendances screen controller bound to one classroom
func NewAttendancesScreen(service services.AttendanceService, classroomID int64) *AttendancesScreen {
	return &AttendancesScreen{service: service, classroomID: classroomID}
}

// Load replaces the in-memory list wholesale from storage.
func (s *AttendancesScreen) Load(ctx context.Context) error {
	attendances, err := s.service.GetAttendancesByClassroom(ctx, s.classroomID)
	if err != nil {
		return err
	}
	s.attendances = attendances
	return nil
}

// Filtered returns the attendances whose date matches the search string.
func (s *AttendancesScreen) Filtered() []models.Attendance {
	filtered := make([]models.Attendance, 0, len(s.attendances))
	for _, attendance := range s.attendances {
		if matchesSearch(s.search, attendance.Date) {
			filtered = append(filtered, attendance)
		}
	}
	return filtered
}

// SetSearch updates the search string
func (s *AttendancesScreen) SetSearch(search string) { s.search = search }

// ToggleSelected selects the row, or clears the selection when the same
// row is tapped again.
func (s *AttendancesScreen) ToggleSelected(id int64) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	s.selectedID = id
}

// SelectedID returns the currently selected row id, 0 when none
func (s *AttendancesScreen) SelectedID() int64 { return s.selectedID }

// UpdateDate changes an attendance's date then reloads the list
func (s *AttendancesScreen) UpdateDate(ctx context.Context, id int64, date string) error {
	attendance := &models.Attendance{ID: id, ClassroomID: s.classroomID, Date: date}
	if err := s.service.UpdateAttendance(ctx, attendance); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes an attendance event then reloads the list
func (s *AttendancesScreen) Delete(ctx context.Context, id int64) error {
	if err := s.service.DeleteAttendance(ctx, id); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = 0
	}
	return s.Load(ctx)
}
