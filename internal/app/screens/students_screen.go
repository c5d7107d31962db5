package screens

import (
	"context"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// StudentForm is the modal form state for the students screen.
type StudentForm struct {
	ID       int64
	Name     string
	Feedback string
}

// StudentsScreen manages the student list of one classroom, including the
// per-student presence and absence totals shown alongside each name.
type StudentsScreen struct {
	service     services.StudentService
	classroomID int64

	students   []models.StudentWithTotals
	search     string
	selectedID int64

	mode ModalMode
	form StudentForm
}

// NewStudentsScreen creates a students screen controller bound to one classroom
func NewStudentsScreen(service services.StudentService, classroomID int64) *StudentsScreen {
	return &StudentsScreen{service: service, classroomID: classroomID}
}

// Load replaces the in-memory list wholesale from storage.
func (s *StudentsScreen) Load(ctx context.Context) error {
	students, err := s.service.GetStudentsByClassroom(ctx, s.classroomID)
	if err != nil {
		return err
	}
	s.students = students
	return nil
}

// Filtered returns the students matching the current search string.
func (s *StudentsScreen) Filtered() []models.StudentWithTotals {
	filtered := make([]models.StudentWithTotals, 0, len(s.students))
	for _, student := range s.students {
		if matchesSearch(s.search, student.Name) {
			filtered = append(filtered, student)
		}
	}
	return filtered
}

// SetSearch updates the search string
func (s *StudentsScreen) SetSearch(search string) { s.search = search }

// ToggleSelected selects the row, or clears the selection when the same
// row is tapped again.
func (s *StudentsScreen) ToggleSelected(id int64) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	s.selectedID = id
}

// SelectedID returns the currently selected row id, 0 when none
func (s *StudentsScreen) SelectedID() int64 { return s.selectedID }

// OpenForAdd opens the modal with an empty form
func (s *StudentsScreen) OpenForAdd() {
	s.mode = ModalAdd
	s.form = StudentForm{}
}

// OpenForEdit opens the modal pre-filled with the student's current values
func (s *StudentsScreen) OpenForEdit(student models.Student) {
	s.mode = ModalEdit
	s.form = StudentForm{ID: student.ID, Name: student.Name, Feedback: student.Feedback}
}

// CloseModal closes the modal and resets the form
func (s *StudentsScreen) CloseModal() {
	s.mode = ModalClosed
	s.form = StudentForm{}
}

// Mode returns the current modal mode
func (s *StudentsScreen) Mode() ModalMode { return s.mode }

// Form returns the current modal form state
func (s *StudentsScreen) Form() StudentForm { return s.form }

// Add enrolls a student then reloads the list
func (s *StudentsScreen) Add(ctx context.Context, name string) error {
	if _, err := s.service.CreateStudent(ctx, s.classroomID, name); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update saves a student's name and feedback then reloads the list
func (s *StudentsScreen) Update(ctx context.Context, id int64, name, feedback string) error {
	student := &models.Student{ID: id, ClassroomID: s.classroomID, Name: name, Feedback: feedback}
	if err := s.service.UpdateStudent(ctx, student); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes a student then reloads the list
func (s *StudentsScreen) Delete(ctx context.Context, id int64) error {
	if err := s.service.DeleteStudent(ctx, id); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = 0
	}
	return s.Load(ctx)
}
