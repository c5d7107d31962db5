package screens

import (
	"context"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// ClassroomForm is the modal form state for the classrooms screen.
type ClassroomForm struct {
	ID   int64
	Name string
}

// ClassroomsScreen manages the classroom list screen state.
type ClassroomsScreen struct {
	service services.ClassroomService

	classrooms []models.Classroom
	search     string
	selectedID int64

	mode ModalMode
	form ClassroomForm
}

// NewClassroomsScreen creates a new classrooms screen controller
func NewClassroomsScreen(service services.ClassroomService) *ClassroomsScreen {
	return &ClassroomsScreen{service: service}
}

// Load replaces the in-memory list wholesale from storage.
func (s *ClassroomsScreen) Load(ctx context.Context) error {
	classrooms, err := s.service.GetAllClassrooms(ctx)
	if err != nil {
		return err
	}
	s.classrooms = classrooms
	return nil
}

// Filtered returns the classrooms matching the current search string.
func (s *ClassroomsScreen) Filtered() []models.Classroom {
	filtered := make([]models.Classroom, 0, len(s.classrooms))
	for _, classroom := range s.classrooms {
		if matchesSearch(s.search, classroom.Name) {
			filtered = append(filtered, classroom)
		}
	}
	return filtered
}

// SetSearch updates the search string
func (s *ClassroomsScreen) SetSearch(search string) { s.search = search }

// ToggleSelected selects the row, or clears the selection when the same
// row is tapped again.
func (s *ClassroomsScreen) ToggleSelected(id int64) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	s.selectedID = id
}

// SelectedID returns the currently selected row id, 0 when none
func (s *ClassroomsScreen) SelectedID() int64 { return s.selectedID }

// OpenForAdd opens the modal with an empty form
func (s *ClassroomsScreen) OpenForAdd() {
	s.mode = ModalAdd
	s.form = ClassroomForm{}
}

// OpenForEdit opens the modal pre-filled with the classroom's current values
func (s *ClassroomsScreen) OpenForEdit(classroom models.Classroom) {
	s.mode = ModalEdit
	s.form = ClassroomForm{ID: classroom.ID, Name: classroom.Name}
}

// CloseModal closes the modal and resets the form
func (s *ClassroomsScreen) CloseModal() {
	s.mode = ModalClosed
	s.form = ClassroomForm{}
}

// Mode returns the current modal mode
func (s *ClassroomsScreen) Mode() ModalMode { return s.mode }

// Form returns the current modal form state
func (s *ClassroomsScreen) Form() ClassroomForm { return s.form }

// Add creates a classroom then reloads the list. On failure the list is
// left as last loaded.
func (s *ClassroomsScreen) Add(ctx context.Context, name string) error {
	if _, err := s.service.CreateClassroom(ctx, name); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update renames a classroom then reloads the list
func (s *ClassroomsScreen) Update(ctx context.Context, id int64, name string) error {
	if err := s.service.UpdateClassroom(ctx, id, name); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes a classroom then reloads the list
func (s *ClassroomsScreen) Delete(ctx context.Context, id int64) error {
	if err := s.service.DeleteClassroom(ctx, id); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = 0
	}
	return s.Load(ctx)
}
