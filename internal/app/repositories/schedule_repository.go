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

// ScheduleRepository handles schedule database operations
type ScheduleRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(database *db.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// CreateSchedule inserts a new weekly time block and returns its id
func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *models.Schedule) (int64, error) {
	query, args, err := r.sb.Insert("Schedules").
		Columns("classroom_id", "week_day", "start_time", "end_time").
		Values(schedule.ClassroomID, schedule.WeekDay, schedule.StartTime, schedule.EndTime).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create schedule SQL")
		return 0, fmt.Errorf("failed to build create schedule query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create schedule query")
		return 0, fmt.Errorf("error creating schedule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new schedule id: %w", err)
	}
	return id, nil
}

// GetSchedulesByClassroom retrieves a classroom's weekly time blocks with
// the classroom name joined in for display.
func (r *ScheduleRepository) GetSchedulesByClassroom(ctx context.Context, classroomID int64) ([]models.ScheduleWithClassroom, error) {
	query, args, err := r.sb.Select(
		"Schedules.id",
		"Schedules.classroom_id",
		"Schedules.week_day",
		"Schedules.start_time",
		"Schedules.end_time",
		"Classrooms.name AS classroom_name",
	).
		From("Schedules").
		Join("Classrooms ON Classrooms.id = Schedules.classroom_id").
		Where(squirrel.Eq{"Schedules.classroom_id": classroomID}).
		OrderBy("Schedules.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get schedules SQL")
		return nil, fmt.Errorf("failed to build get schedules query: %w", err)
	}

	schedules := []models.ScheduleWithClassroom{}
	if err := r.db.SelectContext(ctx, &schedules, query, args...); err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error executing get schedules query")
		return nil, fmt.Errorf("error querying schedules: %w", err)
	}

	return schedules, nil
}

// UpdateSchedule updates an existing weekly time block
func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	query, args, err := r.sb.Update("Schedules").
		SetMap(map[string]interface{}{
			"classroom_id": schedule.ClassroomID,
			"week_day":     schedule.WeekDay,
			"start_time":   schedule.StartTime,
			"end_time":     schedule.EndTime,
		}).
		Where(squirrel.Eq{"id": schedule.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update schedule SQL")
		return fmt.Errorf("failed to build update schedule query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", schedule.ID).Msg("Error executing update schedule query")
		return fmt.Errorf("error updating schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update schedule result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}

// DeleteSchedule deletes a weekly time block by ID
func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("Schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete schedule SQL")
		return fmt.Errorf("failed to build delete schedule query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing delete schedule query")
		return fmt.Errorf("error deleting schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete schedule result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}
