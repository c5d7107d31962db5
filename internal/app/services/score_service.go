package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

// ScoreService defines the interface for score-related operations
type ScoreService interface {
	CreateScore(ctx context.Context, score *models.Score) (*models.Score, error)
	GetScoresByAssessment(ctx context.Context, assessmentID int64) ([]models.ScoreWithStudent, error)
	UpdateScore(ctx context.Context, id int64, value float64) error
	DeleteScore(ctx context.Context, id int64) error
}

// scoreServiceImpl implements the ScoreService interface
type scoreServiceImpl struct {
	scoreRepo      *repositories.ScoreRepository
	assessmentRepo *repositories.AssessmentRepository
	studentRepo    *repositories.StudentRepository
}

// NewScoreService creates a new score service instance
func NewScoreService(
	scoreRepo *repositories.ScoreRepository,
	assessmentRepo *repositories.AssessmentRepository,
	studentRepo *repositories.StudentRepository,
) ScoreService {
	return &scoreServiceImpl{
		scoreRepo:      scoreRepo,
		assessmentRepo: assessmentRepo,
		studentRepo:    studentRepo,
	}
}

// CreateScore creates a single score row, for students enrolled after the
// assessment was seeded.
func (s *scoreServiceImpl) CreateScore(ctx context.Context, score *models.Score) (*models.Score, error) {
	if score == nil {
		return nil, fmt.Errorf("%w: score cannot be nil", apperrors.ErrValidationFailed)
	}
	if score.AssessmentID <= 0 {
		return nil, fmt.Errorf("%w: invalid assessment ID", apperrors.ErrValidationFailed)
	}
	if score.StudentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	if score.Score < 0 {
		return nil, fmt.Errorf("%w: score cannot be negative", apperrors.ErrValidationFailed)
	}

	if _, err := s.studentRepo.GetStudentByID(ctx, score.StudentID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Student not found")
		}
		return nil, fmt.Errorf("error checking student: %w", err)
	}

	id, err := s.scoreRepo.CreateScore(ctx, score)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateScore) {
			return nil, apperrors.ErrDuplicateScore
		}
		return nil, fmt.Errorf("error creating score: %w", err)
	}

	score.ID = id
	return score, nil
}

// GetScoresByAssessment retrieves all scores recorded for an assessment
func (s *scoreServiceImpl) GetScoresByAssessment(ctx context.Context, assessmentID int64) ([]models.ScoreWithStudent, error) {
	if assessmentID <= 0 {
		return nil, fmt.Errorf("%w: invalid assessment ID", apperrors.ErrValidationFailed)
	}

	scores, err := s.scoreRepo.GetScoresByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scores: %w", err)
	}
	return scores, nil
}

// UpdateScore sets the numeric value of an existing score row
func (s *scoreServiceImpl) UpdateScore(ctx context.Context, id int64, value float64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid score ID", apperrors.ErrValidationFailed)
	}
	if value < 0 {
		return fmt.Errorf("%w: score cannot be negative", apperrors.ErrValidationFailed)
	}

	err := s.scoreRepo.UpdateScore(ctx, id, value)
	if err != nil {
		if errors.Is(err, apperrors.ErrScoreNotFound) {
			return apperrors.ErrScoreNotFound
		}
		return fmt.Errorf("error updating score: %w", err)
	}
	return nil
}

// DeleteScore deletes a score row by ID
func (s *scoreServiceImpl) DeleteScore(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid score ID", apperrors.ErrValidationFailed)
	}

	err := s.scoreRepo.DeleteScore(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrScoreNotFound) {
			return apperrors.ErrScoreNotFound
		}
		return fmt.Errorf("error deleting score: %w", err)
	}
	return nil
}
