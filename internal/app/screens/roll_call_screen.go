package screens

import (
	"context"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// RollCallScreen drives the marking of a new attendance: it loads the
// classroom's students, collects one status per marked student, and saves
// the whole roll call in one shot. Students left unmarked are omitted from
// the saved attendance.
type RollCallScreen struct {
	studentService    services.StudentService
	attendanceService services.AttendanceService
	classroomID       int64

	students []models.StudentWithTotals
	marks    map[int64]models.AttendanceStatus
	date     string
}

// NewRollCallScreen creates a roll-call screen controller bound to one classroom
func NewRollCallScreen(studentService services.StudentService, attendanceService services.AttendanceService, classroomID int64) *RollCallScreen {
	return &RollCallScreen{
		studentService:    studentService,
		attendanceService: attendanceService,
		classroomID:       classroomID,
		marks:             make(map[int64]models.AttendanceStatus),
	}
}

// Load fetches the classroom's students and clears any previous marks.
func (s *RollCallScreen) Load(ctx context.Context) error {
	students, err := s.studentService.GetStudentsByClassroom(ctx, s.classroomID)
	if err != nil {
		return err
	}
	s.students = students
	s.marks = make(map[int64]models.AttendanceStatus)
	return nil
}

// Students returns the roster being marked
func (s *RollCallScreen) Students() []models.StudentWithTotals { return s.students }

// SetDate sets the attendance date; empty means today
func (s *RollCallScreen) SetDate(date string) { s.date = date }

// Mark records a student's status for this roll call
func (s *RollCallScreen) Mark(studentID int64, status models.AttendanceStatus) {
	s.marks[studentID] = status
}

// Unmark removes a student's mark, omitting them from the saved roll call
func (s *RollCallScreen) Unmark(studentID int64) {
	delete(s.marks, studentID)
}

// StatusFor returns a student's current mark, "" when unmarked
func (s *RollCallScreen) StatusFor(studentID int64) models.AttendanceStatus {
	return s.marks[studentID]
}

// Save creates the attendance with one status row per marked student, in
// roster order so the saved rows follow the on-screen list. The marks are
// cleared on success.
func (s *RollCallScreen) Save(ctx context.Context) (*models.Attendance, error) {
	entries := make([]models.RollCallEntry, 0, len(s.marks))
	for _, student := range s.students {
		status, ok := s.marks[student.ID]
		if !ok {
			continue
		}
		entries = append(entries, models.RollCallEntry{StudentID: student.ID, Status: status})
	}

	attendance, err := s.attendanceService.CreateAttendance(ctx, s.classroomID, s.date, entries)
	if err != nil {
		return nil, err
	}
	s.marks = make(map[int64]models.AttendanceStatus)
	return attendance, nil
}
