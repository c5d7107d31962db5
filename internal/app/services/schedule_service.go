package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

// timePattern matches the "HH:MM" strings the masked time inputs produce.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ScheduleService defines the interface for schedule-related operations
type ScheduleService interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	GetSchedulesByClassroom(ctx context.Context, classroomID int64) ([]models.ScheduleWithClassroom, error)
	UpdateSchedule(ctx context.Context, schedule *models.Schedule) error
	DeleteSchedule(ctx context.Context, id int64) error
}

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	scheduleRepo  *repositories.ScheduleRepository
	classroomRepo *repositories.ClassroomRepository
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(
	scheduleRepo *repositories.ScheduleRepository,
	classroomRepo *repositories.ClassroomRepository,
) ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo:  scheduleRepo,
		classroomRepo: classroomRepo,
	}
}

func validateScheduleFields(schedule *models.Schedule) error {
	if strings.TrimSpace(schedule.WeekDay) == "" {
		return fmt.Errorf("%w: week day cannot be empty", apperrors.ErrValidationFailed)
	}
	if !timePattern.MatchString(schedule.StartTime) {
		return fmt.Errorf("%w: start time must be HH:MM", apperrors.ErrValidationFailed)
	}
	if !timePattern.MatchString(schedule.EndTime) {
		return fmt.Errorf("%w: end time must be HH:MM", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateSchedule creates a new weekly time block for a classroom
func (s *scheduleServiceImpl) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	if schedule == nil {
		return nil, fmt.Errorf("%w: schedule cannot be nil", apperrors.ErrValidationFailed)
	}
	if err := validateScheduleFields(schedule); err != nil {
		return nil, err
	}

	if _, err := s.classroomRepo.GetClassroomByID(ctx, schedule.ClassroomID); err != nil {
		if errors.Is(err, apperrors.ErrClassroomNotFound) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error checking classroom: %w", err)
	}

	id, err := s.scheduleRepo.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("error creating schedule: %w", err)
	}

	schedule.ID = id
	return schedule, nil
}

// GetSchedulesByClassroom retrieves a classroom's schedule entries
func (s *scheduleServiceImpl) GetSchedulesByClassroom(ctx context.Context, classroomID int64) ([]models.ScheduleWithClassroom, error) {
	if classroomID <= 0 {
		return nil, fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	schedules, err := s.scheduleRepo.GetSchedulesByClassroom(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schedules: %w", err)
	}
	return schedules, nil
}

// UpdateSchedule updates an existing schedule entry
func (s *scheduleServiceImpl) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	if schedule == nil || schedule.ID <= 0 {
		return fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}
	if err := validateScheduleFields(schedule); err != nil {
		return err
	}

	err := s.scheduleRepo.UpdateSchedule(ctx, schedule)
	if err != nil {
		if errors.Is(err, apperrors.ErrScheduleNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return fmt.Errorf("error updating schedule: %w", err)
	}
	return nil
}

// DeleteSchedule deletes a schedule entry by ID
func (s *scheduleServiceImpl) DeleteSchedule(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}

	err := s.scheduleRepo.DeleteSchedule(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrScheduleNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return fmt.Errorf("error deleting schedule: %w", err)
	}
	return nil
}
