package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/db"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
	"github.com/psantos/classdiary/internal/pkg/dberrors"
	"github.com/psantos/classdiary/internal/pkg/logger"
)

// AttendanceStudentRepository handles the per-student rows of roll-call events
type AttendanceStudentRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewAttendanceStudentRepository creates a new AttendanceStudentRepository
func NewAttendanceStudentRepository(database *db.DB) *AttendanceStudentRepository {
	return &AttendanceStudentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// CreateAttendanceStudent inserts one per-student outcome row
func (r *AttendanceStudentRepository) CreateAttendanceStudent(ctx context.Context, record *models.AttendanceStudent) (int64, error) {
	query, args, err := r.sb.Insert("Attendances_Students").
		Columns("attendance_id", "student_id", "status").
		Values(record.AttendanceID, record.StudentID, record.Status).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create attendance record SQL")
		return 0, fmt.Errorf("failed to build create attendance record query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueConstraintError(err) {
			return 0, apperrors.ErrDuplicateAttendanceEntry
		}
		logger.Error().Err(err).Msg("Error executing create attendance record query")
		return 0, fmt.Errorf("error creating attendance record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new attendance record id: %w", err)
	}
	return id, nil
}

// CreateManyTx inserts one outcome row per entry inside the caller's
// transaction, as a single parameterized multi-row insert. Entries are
// validated before any SQL runs; one bad entry aborts the whole batch.
func (r *AttendanceStudentRepository) CreateManyTx(ctx context.Context, tx *sqlx.Tx, attendanceID int64, entries []models.RollCallEntry) error {
	if len(entries) == 0 {
		return nil
	}

	for _, entry := range entries {
		if entry.StudentID <= 0 {
			return fmt.Errorf("%w: roll call entry missing student id", apperrors.ErrValidationFailed)
		}
		if !entry.Status.Valid() {
			return fmt.Errorf("%w: %q", apperrors.ErrInvalidAttendanceStatus, entry.Status)
		}
	}

	builder := r.sb.Insert("Attendances_Students").
		Columns("attendance_id", "student_id", "status")
	for _, entry := range entries {
		builder = builder.Values(attendanceID, entry.StudentID, entry.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building bulk attendance records SQL")
		return fmt.Errorf("failed to build bulk attendance records query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if dberrors.IsUniqueConstraintError(err) {
			return apperrors.ErrDuplicateAttendanceEntry
		}
		logger.Error().Err(err).Int64("attendanceID", attendanceID).Msg("Error executing bulk attendance records query")
		return fmt.Errorf("error creating attendance records: %w", err)
	}

	return nil
}

// GetByAttendance retrieves the outcome rows of one roll-call event with
// each student's name joined in for display.
func (r *AttendanceStudentRepository) GetByAttendance(ctx context.Context, attendanceID int64) ([]models.AttendanceStudentRecord, error) {
	query, args, err := r.sb.Select(
		"Attendances_Students.id",
		"Attendances_Students.attendance_id",
		"Attendances_Students.student_id",
		"Attendances_Students.status",
		"Students.name AS student_name",
	).
		From("Attendances_Students").
		Join("Students ON Students.id = Attendances_Students.student_id").
		Where(squirrel.Eq{"Attendances_Students.attendance_id": attendanceID}).
		OrderBy("Students.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get attendance records SQL")
		return nil, fmt.Errorf("failed to build get attendance records query: %w", err)
	}

	records := []models.AttendanceStudentRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		logger.Error().Err(err).Int64("attendanceID", attendanceID).Msg("Error executing get attendance records query")
		return nil, fmt.Errorf("error querying attendance records: %w", err)
	}

	return records, nil
}

// UpdateAttendanceStudent updates one outcome row
func (r *AttendanceStudentRepository) UpdateAttendanceStudent(ctx context.Context, record *models.AttendanceStudent) error {
	query, args, err := r.sb.Update("Attendances_Students").
		SetMap(map[string]interface{}{
			"attendance_id": record.AttendanceID,
			"student_id":    record.StudentID,
			"status":        record.Status,
		}).
		Where(squirrel.Eq{"id": record.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update attendance record SQL")
		return fmt.Errorf("failed to build update attendance record query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueConstraintError(err) {
			return apperrors.ErrDuplicateAttendanceEntry
		}
		logger.Error().Err(err).Int64("recordID", record.ID).Msg("Error executing update attendance record query")
		return fmt.Errorf("error updating attendance record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update attendance record result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAttendanceStudentNotFound
	}

	return nil
}

// DeleteAttendanceStudent deletes one outcome row by ID
func (r *AttendanceStudentRepository) DeleteAttendanceStudent(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("Attendances_Students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete attendance record SQL")
		return fmt.Errorf("failed to build delete attendance record query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("recordID", id).Msg("Error executing delete attendance record query")
		return fmt.Errorf("error deleting attendance record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete attendance record result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAttendanceStudentNotFound
	}

	return nil
}
