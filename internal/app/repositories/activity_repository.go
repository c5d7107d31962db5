package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/db"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
	"github.com/psantos/classdiary/internal/pkg/logger"
)

// ActivityRepository handles activity database operations
type ActivityRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(database *db.DB) *ActivityRepository {
	return &ActivityRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// CreateActivity inserts a new activity and returns its id. New activities
// start open.
func (r *ActivityRepository) CreateActivity(ctx context.Context, activity *models.Activity) (int64, error) {
	status := activity.Status
	if status == "" {
		status = models.ActivityStatusOpen
	}

	query, args, err := r.sb.Insert("Activities").
		Columns("classroom_id", "description", "status").
		Values(activity.ClassroomID, activity.Description, status).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create activity SQL")
		return 0, fmt.Errorf("failed to build create activity query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create activity query")
		return 0, fmt.Errorf("error creating activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new activity id: %w", err)
	}
	return id, nil
}

// GetActivitiesByClassroom retrieves a classroom's activities with the
// classroom name joined in for display.
func (r *ActivityRepository) GetActivitiesByClassroom(ctx context.Context, classroomID int64) ([]models.ActivityWithClassroom, error) {
	query, args, err := r.sb.Select(
		"Activities.id",
		"Activities.classroom_id",
		"Activities.description",
		"Activities.status",
		"Classrooms.name AS classroom_name",
	).
		From("Activities").
		Join("Classrooms ON Classrooms.id = Activities.classroom_id").
		Where(squirrel.Eq{"Activities.classroom_id": classroomID}).
		OrderBy("Activities.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get activities SQL")
		return nil, fmt.Errorf("failed to build get activities query: %w", err)
	}

	activities := []models.ActivityWithClassroom{}
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error executing get activities query")
		return nil, fmt.Errorf("error querying activities: %w", err)
	}

	return activities, nil
}

// UpdateActivity updates an existing activity
func (r *ActivityRepository) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	query, args, err := r.sb.Update("Activities").
		SetMap(map[string]interface{}{
			"classroom_id": activity.ClassroomID,
			"description":  activity.Description,
			"status":       activity.Status,
		}).
		Where(squirrel.Eq{"id": activity.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update activity SQL")
		return fmt.Errorf("failed to build update activity query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("activityID", activity.ID).Msg("Error executing update activity query")
		return fmt.Errorf("error updating activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update activity result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrActivityNotFound
	}

	return nil
}

// DeleteActivity deletes an activity by ID
func (r *ActivityRepository) DeleteActivity(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("Activities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete activity SQL")
		return fmt.Errorf("failed to build delete activity query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("activityID", id).Msg("Error executing delete activity query")
		return fmt.Errorf("error deleting activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete activity result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrActivityNotFound
	}

	return nil
}
