package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/db"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
	"github.com/psantos/classdiary/internal/pkg/dberrors"
	"github.com/psantos/classdiary/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.DB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// CreateStudent enrolls a student in a classroom and returns the new id.
// Feedback starts with the default text when none is given.
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	feedback := student.Feedback
	if feedback == "" {
		feedback = models.DefaultStudentFeedback
	}

	query, args, err := r.sb.Insert("Students").
		Columns("classroom_id", "name", "feedback").
		Values(student.ClassroomID, student.Name, feedback).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new student id: %w", err)
	}
	return id, nil
}

// GetStudentsByClassroom retrieves a classroom's students with their
// roll-call totals aggregated from Attendances_Students.
func (r *StudentRepository) GetStudentsByClassroom(ctx context.Context, classroomID int64) ([]models.StudentWithTotals, error) {
	query, args, err := r.sb.Select(
		"Students.id",
		"Students.classroom_id",
		"Students.name",
		"Students.feedback",
		"COALESCE(SUM(CASE WHEN Attendances_Students.status = 'presente' THEN 1 ELSE 0 END), 0) AS total_attendance",
		"COALESCE(SUM(CASE WHEN Attendances_Students.status = 'ausente' THEN 1 ELSE 0 END), 0) AS total_absence",
	).
		From("Students").
		LeftJoin("Attendances_Students ON Attendances_Students.student_id = Students.id").
		Where(squirrel.Eq{"Students.classroom_id": classroomID}).
		GroupBy("Students.id", "Students.classroom_id", "Students.name", "Students.feedback").
		OrderBy("Students.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get students SQL")
		return nil, fmt.Errorf("failed to build get students query: %w", err)
	}

	students := []models.StudentWithTotals{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error executing get students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}

	return students, nil
}

// GetStudentByID retrieves a student by ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select("id", "classroom_id", "name", "feedback").
		From("Students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	if err := r.db.GetContext(ctx, student, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// UpdateStudent updates an existing student
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Update("Students").
		SetMap(map[string]interface{}{
			"classroom_id": student.ClassroomID,
			"name":         student.Name,
			"feedback":     student.Feedback,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update student result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteStudent deletes a student by ID. Attendance and score rows that
// reference the student are not removed.
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("Students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsConstraintError(err) {
			// Only reachable with foreign key enforcement turned on.
			return apperrors.NewConflictError("Student still has dependent records")
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete student result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
