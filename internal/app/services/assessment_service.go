package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/db"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

// AssessmentService defines the interface for assessment-related operations
type AssessmentService interface {
	// CreateAssessment creates the assessment and seeds a 0.0 score per
	// currently enrolled student, in one transaction.
	CreateAssessment(ctx context.Context, classroomID int64, name string, passingScore float64) (*models.Assessment, error)
	GetAssessmentsByClassroom(ctx context.Context, classroomID int64) ([]models.AssessmentWithClassroom, error)
	UpdateAssessment(ctx context.Context, assessment *models.Assessment) error
	DeleteAssessment(ctx context.Context, id int64) error
}

// assessmentServiceImpl implements the AssessmentService interface
type assessmentServiceImpl struct {
	database       *db.DB
	assessmentRepo *repositories.AssessmentRepository
	scoreRepo      *repositories.ScoreRepository
	studentRepo    *repositories.StudentRepository
	classroomRepo  *repositories.ClassroomRepository
}

// NewAssessmentService creates a new assessment service instance
func NewAssessmentService(
	database *db.DB,
	assessmentRepo *repositories.AssessmentRepository,
	scoreRepo *repositories.ScoreRepository,
	studentRepo *repositories.StudentRepository,
	classroomRepo *repositories.ClassroomRepository,
) AssessmentService {
	return &assessmentServiceImpl{
		database:       database,
		assessmentRepo: assessmentRepo,
		scoreRepo:      scoreRepo,
		studentRepo:    studentRepo,
		classroomRepo:  classroomRepo,
	}
}

// CreateAssessment creates an assessment atomically with its seeded
// scores. If seeding fails the assessment is rolled back too, so no
// orphaned parent survives a partial failure.
func (s *assessmentServiceImpl) CreateAssessment(ctx context.Context, classroomID int64, name string, passingScore float64) (*models.Assessment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if passingScore < 0 {
		return nil, fmt.Errorf("%w: passing score cannot be negative", apperrors.ErrValidationFailed)
	}

	if _, err := s.classroomRepo.GetClassroomByID(ctx, classroomID); err != nil {
		if errors.Is(err, apperrors.ErrClassroomNotFound) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error checking classroom: %w", err)
	}

	students, err := s.studentRepo.GetStudentsByClassroom(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error loading enrolled students: %w", err)
	}
	studentIDs := make([]int64, 0, len(students))
	for _, student := range students {
		studentIDs = append(studentIDs, student.ID)
	}

	assessment := &models.Assessment{
		ClassroomID:  classroomID,
		Name:         name,
		PassingScore: passingScore,
	}
	err = s.database.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		id, err := s.assessmentRepo.CreateAssessmentTx(ctx, tx, assessment)
		if err != nil {
			return err
		}
		assessment.ID = id
		return s.scoreRepo.SeedScoresTx(ctx, tx, id, studentIDs)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) || errors.Is(err, apperrors.ErrDuplicateScore) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating assessment: %w", err)
	}

	return assessment, nil
}

// GetAssessmentsByClassroom retrieves a classroom's assessments
func (s *assessmentServiceImpl) GetAssessmentsByClassroom(ctx context.Context, classroomID int64) ([]models.AssessmentWithClassroom, error) {
	if classroomID <= 0 {
		return nil, fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	assessments, err := s.assessmentRepo.GetAssessmentsByClassroom(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assessments: %w", err)
	}
	return assessments, nil
}

// UpdateAssessment updates an existing assessment
func (s *assessmentServiceImpl) UpdateAssessment(ctx context.Context, assessment *models.Assessment) error {
	if assessment == nil || assessment.ID <= 0 {
		return fmt.Errorf("%w: invalid assessment ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(assessment.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if assessment.PassingScore < 0 {
		return fmt.Errorf("%w: passing score cannot be negative", apperrors.ErrValidationFailed)
	}

	err := s.assessmentRepo.UpdateAssessment(ctx, assessment)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssessmentNotFound) {
			return apperrors.ErrAssessmentNotFound
		}
		return fmt.Errorf("error updating assessment: %w", err)
	}
	return nil
}

// DeleteAssessment deletes an assessment by ID
func (s *assessmentServiceImpl) DeleteAssessment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid assessment ID", apperrors.ErrValidationFailed)
	}

	err := s.assessmentRepo.DeleteAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssessmentNotFound) {
			return apperrors.ErrAssessmentNotFound
		}
		return fmt.Errorf("error deleting assessment: %w", err)
	}
	return nil
}
