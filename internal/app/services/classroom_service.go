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

// ClassroomService defines the interface for classroom-related operations
type ClassroomService interface {
	CreateClassroom(ctx context.Context, name string) (*models.Classroom, error)
	GetAllClassrooms(ctx context.Context) ([]models.Classroom, error)
	GetClassroomByID(ctx context.Context, id int64) (*models.Classroom, error)
	UpdateClassroom(ctx context.Context, id int64, name string) error
	DeleteClassroom(ctx context.Context, id int64) error
}

// classroomServiceImpl implements the ClassroomService interface
type classroomServiceImpl struct {
	classroomRepo *repositories.ClassroomRepository
}

// NewClassroomService creates a new classroom service instance
func NewClassroomService(classroomRepo *repositories.ClassroomRepository) ClassroomService {
	return &classroomServiceImpl{
		classroomRepo: classroomRepo,
	}
}

// CreateClassroom creates a new classroom
func (s *classroomServiceImpl) CreateClassroom(ctx context.Context, name string) (*models.Classroom, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	classroom := &models.Classroom{Name: name}
	id, err := s.classroomRepo.CreateClassroom(ctx, classroom)
	if err != nil {
		return nil, fmt.Errorf("error creating classroom: %w", err)
	}
	classroom.ID = id
	return classroom, nil
}

// GetAllClassrooms retrieves all classrooms
func (s *classroomServiceImpl) GetAllClassrooms(ctx context.Context) ([]models.Classroom, error) {
	classrooms, err := s.classroomRepo.GetAllClassrooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classrooms: %w", err)
	}
	return classrooms, nil
}

// GetClassroomByID retrieves a classroom by ID
func (s *classroomServiceImpl) GetClassroomByID(ctx context.Context, id int64) (*models.Classroom, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	classroom, err := s.classroomRepo.GetClassroomByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrClassroomNotFound) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error retrieving classroom: %w", err)
	}
	return classroom, nil
}

// UpdateClassroom renames an existing classroom
func (s *classroomServiceImpl) UpdateClassroom(ctx context.Context, id int64, name string) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.classroomRepo.UpdateClassroom(ctx, &models.Classroom{ID: id, Name: name})
	if err != nil {
		if errors.Is(err, apperrors.ErrClassroomNotFound) {
			return apperrors.ErrClassroomNotFound
		}
		return fmt.Errorf("error updating classroom: %w", err)
	}
	return nil
}

// DeleteClassroom deletes a classroom by ID
func (s *classroomServiceImpl) DeleteClassroom(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	err := s.classroomRepo.DeleteClassroom(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrClassroomNotFound) {
			return apperrors.ErrClassroomNotFound
		}
		return fmt.Errorf("error deleting classroom: %w", err)
	}
	return nil
}
