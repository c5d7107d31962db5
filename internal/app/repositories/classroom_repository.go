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

// ClassroomRepository handles classroom database operations
type ClassroomRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewClassroomRepository creates a new ClassroomRepository
func NewClassroomRepository(database *db.DB) *ClassroomRepository {
	return &ClassroomRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// CreateClassroom inserts a new classroom and returns its id
func (r *ClassroomRepository) CreateClassroom(ctx context.Context, classroom *models.Classroom) (int64, error) {
	query, args, err := r.sb.Insert("Classrooms").
		Columns("name").
		Values(classroom.Name).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create classroom SQL")
		return 0, fmt.Errorf("failed to build create classroom query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create classroom query")
		return 0, fmt.Errorf("error creating classroom: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new classroom id: %w", err)
	}
	return id, nil
}

// GetAllClassrooms retrieves all classrooms
func (r *ClassroomRepository) GetAllClassrooms(ctx context.Context) ([]models.Classroom, error) {
	query, args, err := r.sb.Select("id", "name").
		From("Classrooms").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all classrooms SQL")
		return nil, fmt.Errorf("failed to build get all classrooms query: %w", err)
	}

	classrooms := []models.Classroom{}
	if err := r.db.SelectContext(ctx, &classrooms, query, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing get all classrooms query")
		return nil, fmt.Errorf("error querying classrooms: %w", err)
	}

	return classrooms, nil
}

// GetClassroomByID retrieves a classroom by ID
func (r *ClassroomRepository) GetClassroomByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query, args, err := r.sb.Select("id", "name").
		From("Classrooms").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get classroom by ID SQL")
		return nil, fmt.Errorf("failed to build get classroom query: %w", err)
	}

	classroom := &models.Classroom{}
	if err := r.db.GetContext(ctx, classroom, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrClassroomNotFound
		}
		logger.Error().Err(err).Int64("classroomID", id).Msg("Error scanning classroom row")
		return nil, fmt.Errorf("error getting classroom by ID: %w", err)
	}

	return classroom, nil
}

// UpdateClassroom updates an existing classroom
func (r *ClassroomRepository) UpdateClassroom(ctx context.Context, classroom *models.Classroom) error {
	query, args, err := r.sb.Update("Classrooms").
		Set("name", classroom.Name).
		Where(squirrel.Eq{"id": classroom.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update classroom SQL")
		return fmt.Errorf("failed to build update classroom query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classroomID", classroom.ID).Msg("Error executing update classroom query")
		return fmt.Errorf("error updating classroom: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update classroom result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrClassroomNotFound
	}

	return nil
}

// DeleteClassroom deletes a classroom by ID. The delete is physical and
// does not cascade: students, attendances, assessments, activities and
// schedules referencing the classroom are left in place.
func (r *ClassroomRepository) DeleteClassroom(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("Classrooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete classroom SQL")
		return fmt.Errorf("failed to build delete classroom query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsConstraintError(err) {
			// Only reachable with foreign key enforcement turned on.
			return apperrors.NewConflictError("Classroom still has dependent records")
		}
		logger.Error().Err(err).Int64("classroomID", id).Msg("Error executing delete classroom query")
		return fmt.Errorf("error deleting classroom: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete classroom result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrClassroomNotFound
	}

	return nil
}
