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

// ScoreRepository handles score database operations
type ScoreRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewScoreRepository creates a new ScoreRepository
func NewScoreRepository(database *db.DB) *ScoreRepository {
	return &ScoreRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// CreateScore inserts a single score row
func (r *ScoreRepository) CreateScore(ctx context.Context, score *models.Score) (int64, error) {
	query, args, err := r.sb.Insert("Scores").
		Columns("assessment_id", "student_id", "score").
		Values(score.AssessmentID, score.StudentID, score.Score).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create score SQL")
		return 0, fmt.Errorf("failed to build create score query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueConstraintError(err) {
			return 0, apperrors.ErrDuplicateScore
		}
		logger.Error().Err(err).Msg("Error executing create score query")
		return 0, fmt.Errorf("error creating score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new score id: %w", err)
	}
	return id, nil
}

// SeedScoresTx inserts a 0.0 score per student inside the caller's
// transaction, as a single parameterized multi-row insert. One bad student
// id aborts the whole batch before any SQL runs.
func (r *ScoreRepository) SeedScoresTx(ctx context.Context, tx *sqlx.Tx, assessmentID int64, studentIDs []int64) error {
	if len(studentIDs) == 0 {
		return nil
	}

	for _, studentID := range studentIDs {
		if studentID <= 0 {
			return fmt.Errorf("%w: score seed missing student id", apperrors.ErrValidationFailed)
		}
	}

	builder := r.sb.Insert("Scores").
		Columns("assessment_id", "student_id", "score")
	for _, studentID := range studentIDs {
		builder = builder.Values(assessmentID, studentID, 0.0)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building seed scores SQL")
		return fmt.Errorf("failed to build seed scores query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if dberrors.IsUniqueConstraintError(err) {
			return apperrors.ErrDuplicateScore
		}
		logger.Error().Err(err).Int64("assessmentID", assessmentID).Msg("Error executing seed scores query")
		return fmt.Errorf("error seeding scores: %w", err)
	}

	return nil
}

// GetScoresByAssessment retrieves an assessment's scores with each
// student's name joined in for display.
func (r *ScoreRepository) GetScoresByAssessment(ctx context.Context, assessmentID int64) ([]models.ScoreWithStudent, error) {
	query, args, err := r.sb.Select(
		"Scores.id",
		"Scores.assessment_id",
		"Scores.student_id",
		"Scores.score",
		"Students.name AS student_name",
	).
		From("Scores").
		Join("Students ON Students.id = Scores.student_id").
		Where(squirrel.Eq{"Scores.assessment_id": assessmentID}).
		OrderBy("Students.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get scores SQL")
		return nil, fmt.Errorf("failed to build get scores query: %w", err)
	}

	scores := []models.ScoreWithStudent{}
	if err := r.db.SelectContext(ctx, &scores, query, args...); err != nil {
		logger.Error().Err(err).Int64("assessmentID", assessmentID).Msg("Error executing get scores query")
		return nil, fmt.Errorf("error querying scores: %w", err)
	}

	return scores, nil
}

// UpdateScore sets the numeric result of one score row
func (r *ScoreRepository) UpdateScore(ctx context.Context, id int64, value float64) error {
	query, args, err := r.sb.Update("Scores").
		Set("score", value).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update score SQL")
		return fmt.Errorf("failed to build update score query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scoreID", id).Msg("Error executing update score query")
		return fmt.Errorf("error updating score: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update score result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrScoreNotFound
	}

	return nil
}

// DeleteScore deletes a score row by ID
func (r *ScoreRepository) DeleteScore(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("Scores").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete score SQL")
		return fmt.Errorf("failed to build delete score query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scoreID", id).Msg("Error executing delete score query")
		return fmt.Errorf("error deleting score: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete score result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrScoreNotFound
	}

	return nil
}
