package screens

import (
	"context"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/services"
)

// ScheduleForm is the modal form state for the schedules screen.
type ScheduleForm struct {
	ID        int64
	WeekDay   string
	StartTime string
	EndTime   string
}

// SchedulesScreen manages the weekly time-block list of one classroom.
type SchedulesScreen struct {
	service     services.ScheduleService
	classroomID int64

	schedules  []models.ScheduleWithClassroom
	search     string
	selectedID int64

	mode ModalMode
	form ScheduleForm
}

// NewSchedulesScreen creates a schedules screen controller bound to one classroom
func NewSchedulesScreen(service services.ScheduleService, classroomID int64) *SchedulesScreen {
	return &SchedulesScreen{service: service, classroomID: classroomID}
}

// Load replaces the in-memory list wholesale from storage.
func (s *SchedulesScreen) Load(ctx context.Context) error {
	schedules, err := s.service.GetSchedulesByClassroom(ctx, s.classroomID)
	if err != nil {
		return err
	}
	s.schedules = schedules
	return nil
}

// Filtered returns the schedules whose week day or classroom name matches
// the search string.
func (s *SchedulesScreen) Filtered() []models.ScheduleWithClassroom {
	filtered := make([]models.ScheduleWithClassroom, 0, len(s.schedules))
	for _, schedule := range s.schedules {
		if matchesSearch(s.search, schedule.WeekDay, schedule.ClassroomName) {
			filtered = append(filtered, schedule)
		}
	}
	return filtered
}

// SetSearch updates the search string
func (s *SchedulesScreen) SetSearch(search string) { s.search = search }

// ToggleSelected selects the row, or clears the selection when the same
// row is tapped again.
func (s *SchedulesScreen) ToggleSelected(id int64) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	s.selectedID = id
}

// SelectedID returns the currently selected row id, 0 when none
func (s *SchedulesScreen) SelectedID() int64 { return s.selectedID }

// OpenForAdd opens the modal with an empty form
func (s *SchedulesScreen) OpenForAdd() {
	s.mode = ModalAdd
	s.form = ScheduleForm{}
}

// OpenForEdit opens the modal pre-filled with the schedule's current values
func (s *SchedulesScreen) OpenForEdit(schedule models.Schedule) {
	s.mode = ModalEdit
	s.form = ScheduleForm{
		ID:        schedule.ID,
		WeekDay:   schedule.WeekDay,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
	}
}

// CloseModal closes the modal and resets the form
func (s *SchedulesScreen) CloseModal() {
	s.mode = ModalClosed
	s.form = ScheduleForm{}
}

// Mode returns the current modal mode
func (s *SchedulesScreen) Mode() ModalMode { return s.mode }

// Form returns the current modal form state
func (s *SchedulesScreen) Form() ScheduleForm { return s.form }

// Add creates a weekly time block then reloads the list
func (s *SchedulesScreen) Add(ctx context.Context, weekDay, startTime, endTime string) error {
	schedule := &models.Schedule{ClassroomID: s.classroomID, WeekDay: weekDay, StartTime: startTime, EndTime: endTime}
	if _, err := s.service.CreateSchedule(ctx, schedule); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Update saves a schedule's fields then reloads the list
func (s *SchedulesScreen) Update(ctx context.Context, id int64, weekDay, startTime, endTime string) error {
	schedule := &models.Schedule{ID: id, ClassroomID: s.classroomID, WeekDay: weekDay, StartTime: startTime, EndTime: endTime}
	if err := s.service.UpdateSchedule(ctx, schedule); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes a schedule then reloads the list
func (s *SchedulesScreen) Delete(ctx context.Context, id int64) error {
	if err := s.service.DeleteSchedule(ctx, id); err != nil {
		return err
	}
	if s.selectedID == id {
		s.selectedID = 0
	}
	return s.Load(ctx)
}
