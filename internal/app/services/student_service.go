package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, classroomID int64, name string) (*models.Student, error)
	GetStudentsByClassroom(ctx context.Context, classroomID int64) ([]models.StudentWithTotals, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo   *repositories.StudentRepository
	classroomRepo *repositories.ClassroomRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, classroomRepo *repositories.ClassroomRepository) StudentService {
	return &studentServiceImpl{
		studentRepo:   studentRepo,
		classroomRepo: classroomRepo,
	}
}

// CreateStudent enrolls a student in a classroom. The student starts with
// the default feedback text.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, classroomID int64, name string) (*models.Student, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	// The classroom must exist; the schema alone may not enforce it.
	if _, err := s.classroomRepo.GetClassroomByID(ctx, classroomID); err != nil {
		if errors.Is(err, apperrors.ErrClassroomNotFound) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error checking classroom: %w", err)
	}

	student := &models.Student{
		ClassroomID: classroomID,
		Name:        name,
		Feedback:    models.DefaultStudentFeedback,
	}
	id, err := s.studentRepo.CreateStudent(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	student.ID = id
	return student, nil
}

// GetStudentsByClassroom retrieves a classroom's students with their
// roll-call totals.
func (s *studentServiceImpl) GetStudentsByClassroom(ctx context.Context, classroomID int64) ([]models.StudentWithTotals, error) {
	if classroomID <= 0 {
		return nil, fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	students, err := s.studentRepo.GetStudentsByClassroom(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// UpdateStudent updates an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if student == nil || student.ID <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if student.ClassroomID <= 0 {
		return fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	err := s.studentRepo.UpdateStudent(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent deletes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	err := s.studentRepo.DeleteStudent(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
