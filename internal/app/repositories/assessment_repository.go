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

// AssessmentRepository handles assessment database operations
type AssessmentRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(database *db.DB) *AssessmentRepository {
	return &AssessmentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// CreateAssessmentTx inserts an assessment inside the caller's transaction
// and returns the new id. Creating an assessment always seeds its score
// rows in the same transaction, so there is no plain variant.
func (r *AssessmentRepository) CreateAssessmentTx(ctx context.Context, tx *sqlx.Tx, assessment *models.Assessment) (int64, error) {
	query, args, err := r.sb.Insert("Assessments").
		Columns("classroom_id", "name", "passing_score").
		Values(assessment.ClassroomID, assessment.Name, assessment.PassingScore).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create assessment SQL")
		return 0, fmt.Errorf("failed to build create assessment query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create assessment query")
		return 0, fmt.Errorf("error creating assessment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new assessment id: %w", err)
	}
	return id, nil
}

// GetAssessmentsByClassroom retrieves a classroom's assessments with the
// classroom name joined in for display.
func (r *AssessmentRepository) GetAssessmentsByClassroom(ctx context.Context, classroomID int64) ([]models.AssessmentWithClassroom, error) {
	query, args, err := r.sb.Select(
		"Assessments.id",
		"Assessments.classroom_id",
		"Assessments.name",
		"Assessments.passing_score",
		"Classrooms.name AS classroom_name",
	).
		From("Assessments").
		Join("Classrooms ON Classrooms.id = Assessments.classroom_id").
		Where(squirrel.Eq{"Assessments.classroom_id": classroomID}).
		OrderBy("Assessments.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get assessments SQL")
		return nil, fmt.Errorf("failed to build get assessments query: %w", err)
	}

	assessments := []models.AssessmentWithClassroom{}
	if err := r.db.SelectContext(ctx, &assessments, query, args...); err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error executing get assessments query")
		return nil, fmt.Errorf("error querying assessments: %w", err)
	}

	return assessments, nil
}

// UpdateAssessment updates an existing assessment
func (r *AssessmentRepository) UpdateAssessment(ctx context.Context, assessment *models.Assessment) error {
	query, args, err := r.sb.Update("Assessments").
		SetMap(map[string]interface{}{
			"classroom_id":  assessment.ClassroomID,
			"name":          assessment.Name,
			"passing_score": assessment.PassingScore,
		}).
		Where(squirrel.Eq{"id": assessment.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update assessment SQL")
		return fmt.Errorf("failed to build update assessment query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentID", assessment.ID).Msg("Error executing update assessment query")
		return fmt.Errorf("error updating assessment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update assessment result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssessmentNotFound
	}

	return nil
}

// DeleteAssessment deletes an assessment by ID. Its score rows are not
// removed.
func (r *AssessmentRepository) DeleteAssessment(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("Assessments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete assessment SQL")
		return fmt.Errorf("failed to build delete assessment query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentID", id).Msg("Error executing delete assessment query")
		return fmt.Errorf("error deleting assessment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete assessment result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssessmentNotFound
	}

	return nil
}
