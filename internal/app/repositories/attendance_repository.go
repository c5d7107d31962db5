package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/db"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
	"github.com/psantos/classdiary/internal/pkg/logger"
)

// AttendanceRepository handles roll-call event database operations
type AttendanceRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(database *db.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// CreateAttendanceTx inserts a roll-call event inside the caller's
// transaction and returns the new id. Saving an attendance always seeds its
// per-student rows in the same transaction, so there is no plain variant.
func (r *AttendanceRepository) CreateAttendanceTx(ctx context.Context, tx *sqlx.Tx, attendance *models.Attendance) (int64, error) {
	query, args, err := r.sb.Insert("Attendances").
		Columns("classroom_id", "date").
		Values(attendance.ClassroomID, attendance.Date).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create attendance SQL")
		return 0, fmt.Errorf("failed to build create attendance query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create attendance query")
		return 0, fmt.Errorf("error creating attendance: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new attendance id: %w", err)
	}
	return id, nil
}

// GetAttendancesByClassroom retrieves a classroom's roll-call events,
// newest first.
func (r *AttendanceRepository) GetAttendancesByClassroom(ctx context.Context, classroomID int64) ([]models.Attendance, error) {
	query, args, err := r.sb.Select("id", "classroom_id", "date").
		From("Attendances").
		Where(squirrel.Eq{"classroom_id": classroomID}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get attendances SQL")
		return nil, fmt.Errorf("failed to build get attendances query: %w", err)
	}

	attendances := []models.Attendance{}
	if err := r.db.SelectContext(ctx, &attendances, query, args...); err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error executing get attendances query")
		return nil, fmt.Errorf("error querying attendances: %w", err)
	}

	return attendances, nil
}

// UpdateAttendance updates an existing roll-call event
func (r *AttendanceRepository) UpdateAttendance(ctx context.Context, attendance *models.Attendance) error {
	query, args, err := r.sb.Update("Attendances").
		SetMap(map[string]interface{}{
			"classroom_id": attendance.ClassroomID,
			"date":         attendance.Date,
		}).
		Where(squirrel.Eq{"id": attendance.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update attendance SQL")
		return fmt.Errorf("failed to build update attendance query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("attendanceID", attendance.ID).Msg("Error executing update attendance query")
		return fmt.Errorf("error updating attendance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update attendance result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// DeleteAttendance deletes a roll-call event by ID. Its per-student rows
// are not removed.
func (r *AttendanceRepository) DeleteAttendance(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("Attendances").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete attendance SQL")
		return fmt.Errorf("failed to build delete attendance query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("attendanceID", id).Msg("Error executing delete attendance query")
		return fmt.Errorf("error deleting attendance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete attendance result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}
