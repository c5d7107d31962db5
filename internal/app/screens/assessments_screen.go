package screens

import (
	"context"
	"strconv"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// AssessmentForm is the modal form state for the assessments screen.
type AssessmentForm struct {
	ID           int64
	Name         string
	PassingScore float64
}

// AssessmentsScreen manages the assessment list of one classroom.
type AssessmentsScreen struct {
	service     services.AssessmentService
	classroomID int64

	assessments []models.AssessmentWithClassroom
	search      string
	selectedID  int64

	mode ModalMode
	form AssessmentForm
}

// NewAssessmentsScreen creates an assessments screen controller bound to one classroom
func NewAssessmentsScreen(service services.AssessmentService, classroomID int64) *AssessmentsScreen {
	return &AssessmentsScreen{service: service, classroomID: classroomID}
}

// Load replaces the in-memory list wholesale from storage.
func (s *AssessmentsScreen) Load(ctx context.Context) error {
	assessments, err := s.service.GetAssessmentsByClassroom(ctx, s.classroomID)
	if err != nil {
		return err
	}
	s.assessments = assessments
	return nil
}

// Filtered returns the assessments whose name or passing score matches the
// search string.
func (s *AssessmentsScreen) Filtered() []models.AssessmentWithClassroom {
	filtered := make([]models.AssessmentWithClassroom, 0, len(s.assessments))
	for _, assessment := range s.assessments {
		passing := strconv.FormatFloat(assessment.PassingScore, 'f', -1, 64)
		if matchesSearch(s.search, assessment.Name, passing) {
			filtered = append(filtered, assessment)
		}
	}
	return filtered
}

// SetSearch updates the search string
func (s *AssessmentsScreen) SetSearch(search string) { s.search = search }

// ToggleSelected selects the row, or clears the selection when the same
// row is tapped again.
func (s *AssessmentsScreen) ToggleSelected(id int64) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	s.selectedID = id
}

// SelectedID returns the currently selected row id, 0 when none
func (s *AssessmentsScreen) SelectedID() int64 { return s.selectedID }

// OpenForAdd opens the modal with an empty form
func (s *AssessmentsScreen) OpenForAdd() {
	s.mode = ModalAdd
	s.form = AssessmentForm{}
}

// OpenForEdit opens the modal pre-filled with the assessment's current values
func (s *AssessmentsScreen) OpenForEdit(assessment models.Assessment) {
	s.mode = ModalEdit
	s.form = AssessmentForm{ID: assessment.ID, Name: assessment.Name, PassingScore: assessment.PassingScore}
}

// CloseModal closes the modal and resets the form
func (s *AssessmentsScreen) CloseModal() {
	s.mode = ModalClosed
	s.form = AssessmentForm{}
}

// Mode returns the current modal mode
func (s *AssessmentsScreen) Mode() ModalMode { return s.mode }

// Form returns the current modal form state
func (s *AssessmentsScreen) Form() AssessmentForm { return s.form }

// Add creates an assessment, which seeds a zero score per enrolled student,
// then reloads the list.
func (s *AssessmentsScreen) Add(ctx context.Context, name string, passingScore float64) error {
	if _, err := s.service.CreateAssessment(ctx, s.classroomID, name, passingScore); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update saves an assessment's name and passing score then reloads the list
func (s *AssessmentsScreen) Update(ctx context.Context, id int64, name string, passingScore float64) error {
	assessment := &models.Assessment{ID: id, ClassroomID: s.classroomID, Name: name, PassingScore: passingScore}
	if err := s.service.UpdateAssessment(ctx, assessment); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes an assessment then reloads the list
func (s *AssessmentsScreen) Delete(ctx context.Context, id int64) error {
	if err := s.service.DeleteAssessment(ctx, id); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = 0
	}
	return s.Load(ctx)
}
