package screens

import (
	"context"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// ActivityForm is the modal form state for the activities screen.
type ActivityForm struct {
	ID          int64
	Description string
	Status      models.ActivityStatus
}

// ActivitiesScreen manages the activity list of one classroom.
type ActivitiesScreen struct {
	service     services.ActivityService
	classroomID int64

	activities []models.ActivityWithClassroom
	search     string
	selectedID int64

	mode ModalMode
	form ActivityForm
}

// NewActivitiesScreen creates an activities screen controller bound to one classroom
func NewActivitiesScreen(service services.ActivityService, classroomID int64) *ActivitiesScreen {
	return &ActivitiesScreen{service: service, classroomID: classroomID}
}

// Load replaces the in-memory list wholesale from storage.
func (s *ActivitiesScreen) Load(ctx context.Context) error {
	activities, err := s.service.GetActivitiesByClassroom(ctx, s.classroomID)
	if err != nil {
		return err
	}
	s.activities = activities
	return nil
}

// Filtered returns the activities whose description or classroom name
// matches the search string.
func (s *ActivitiesScreen) Filtered() []models.ActivityWithClassroom {
	filtered := make([]models.ActivityWithClassroom, 0, len(s.activities))
	for _, activity := range s.activities {
		if matchesSearch(s.search, activity.Description, activity.ClassroomName) {
			filtered = append(filtered, activity)
		}
	}
	return filtered
}

// SetSearch updates the search string
func (s *ActivitiesScreen) SetSearch(search string) { s.search = search }

// ToggleSelected selects the row, or clears the selection when the same
// row is tapped again.
func (s *ActivitiesScreen) ToggleSelected(id int64) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	s.selectedID = id
}

// SelectedID returns the currently selected row id, 0 when none
func (s *ActivitiesScreen) SelectedID() int64 { return s.selectedID }

// OpenForAdd opens the modal with an empty form
func (s *ActivitiesScreen) OpenForAdd() {
	s.mode = ModalAdd
	s.form = ActivityForm{Status: models.ActivityStatusOpen}
}

// OpenForEdit opens the modal pre-filled with the activity's current values
func (s *ActivitiesScreen) OpenForEdit(activity models.Activity) {
	s.mode = ModalEdit
	s.form = ActivityForm{ID: activity.ID, Description: activity.Description, Status: activity.Status}
}

// CloseModal closes the modal and resets the form
func (s *ActivitiesScreen) CloseModal() {
	s.mode = ModalClosed
	s.form = ActivityForm{}
}

// Mode returns the current modal mode
func (s *ActivitiesScreen) Mode() ModalMode { return s.mode }

// Form returns the current modal form state
func (s *ActivitiesScreen) Form() ActivityForm { return s.form }

// Add creates an activity then reloads the list
func (s *ActivitiesScreen) Add(ctx context.Context, description string, status models.ActivityStatus) error {
	activity := &models.Activity{ClassroomID: s.classroomID, Description: description, Status: status}
	if _, err := s.service.CreateActivity(ctx, activity); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update saves an activity's description and status then reloads the list
func (s *ActivitiesScreen) Update(ctx context.Context, id int64, description string, status models.ActivityStatus) error {
	activity := &models.Activity{ID: id, ClassroomID: s.classroomID, Description: description, Status: status}
	if err := s.service.UpdateActivity(ctx, activity); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes an activity then reloads the list
func (s *ActivitiesScreen) Delete(ctx context.Context, id int64) error {
	if err := s.service.DeleteActivity(ctx, id); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = 0
	}
	return s.Load(ctx)
}
