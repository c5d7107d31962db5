package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

// ActivityService defines the interface for activity-related operations
type ActivityService interface {
	CreateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	GetActivitiesByClassroom(ctx context.Context, classroomID int64) ([]models.ActivityWithClassroom, error)
	UpdateActivity(ctx context.Context, activity *models.Activity) error
	DeleteActivity(ctx context.Context, id int64) error
}

// activityServiceImpl implements the ActivityService interface
type activityServiceImpl struct {
	activityRepo  *repositories.ActivityRepository
	classroomRepo *repositories.ClassroomRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService(
	activityRepo *repositories.ActivityRepository,
	classroomRepo *repositories.ClassroomRepository,
) ActivityService {
	return &activityServiceImpl{
		activityRepo:  activityRepo,
		classroomRepo: classroomRepo,
	}
}

// CreateActivity creates a new activity for a classroom. New activities
// open as "aberta" unless a valid status is given.
func (s *activityServiceImpl) CreateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if activity == nil {
		return nil, fmt.Errorf("%w: activity cannot be nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(activity.Description) == "" {
		return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidationFailed)
	}
	if activity.Status != "" && !activity.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidationFailed, activity.Status)
	}

	if _, err := s.classroomRepo.GetClassroomByID(ctx, activity.ClassroomID); err != nil {
		if errors.Is(err, apperrors.ErrClassroomNotFound) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error checking classroom: %w", err)
	}

	id, err := s.activityRepo.CreateActivity(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("error creating activity: %w", err)
	}

	activity.ID = id
	return activity, nil
}

// GetActivitiesByClassroom retrieves a classroom's activities
func (s *activityServiceImpl) GetActivitiesByClassroom(ctx context.Context, classroomID int64) ([]models.ActivityWithClassroom, error) {
	if classroomID <= 0 {
		return nil, fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	activities, err := s.activityRepo.GetActivitiesByClassroom(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving activities: %w", err)
	}
	return activities, nil
}

// UpdateActivity updates an existing activity's description and status
func (s *activityServiceImpl) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	if activity == nil || activity.ID <= 0 {
		return fmt.Errorf("%w: invalid activity ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(activity.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidationFailed)
	}
	if !activity.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", apperrors.ErrValidationFailed, activity.Status)
	}

	err := s.activityRepo.UpdateActivity(ctx, activity)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("error updating activity: %w", err)
	}
	return nil
}

// DeleteActivity deletes an activity by ID
func (s *activityServiceImpl) DeleteActivity(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid activity ID", apperrors.ErrValidationFailed)
	}

	err := s.activityRepo.DeleteActivity(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("error deleting activity: %w", err)
	}
	return nil
}
