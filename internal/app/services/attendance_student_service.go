package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

// AttendanceStudentService defines the interface for the per-student rows
// of roll-call events
type AttendanceStudentService interface {
	CreateAttendanceStudent(ctx context.Context, record *models.AttendanceStudent) (int64, error)
	GetByAttendance(ctx context.Context, attendanceID int64) ([]models.AttendanceStudentRecord, error)
	UpdateAttendanceStudent(ctx context.Context, record *models.AttendanceStudent) error
	DeleteAttendanceStudent(ctx context.Context, id int64) error
}

// attendanceStudentServiceImpl implements the AttendanceStudentService interface
type attendanceStudentServiceImpl struct {
	attendanceStudentRepo *repositories.AttendanceStudentRepository
}

// NewAttendanceStudentService creates a new attendance-student service instance
func NewAttendanceStudentService(attendanceStudentRepo *repositories.AttendanceStudentRepository) AttendanceStudentService {
	return &attendanceStudentServiceImpl{
		attendanceStudentRepo: attendanceStudentRepo,
	}
}

// validateRecord validates an outcome row before database operations
func validateRecord(record *models.AttendanceStudent) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", apperrors.ErrValidationFailed)
	}
	if record.AttendanceID <= 0 {
		return fmt.Errorf("%w: invalid attendance ID", apperrors.ErrValidationFailed)
	}
	if record.StudentID <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	if !record.Status.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidAttendanceStatus, record.Status)
	}
	return nil
}

// CreateAttendanceStudent adds one outcome row to an existing roll call
func (s *attendanceStudentServiceImpl) CreateAttendanceStudent(ctx context.Context, record *models.AttendanceStudent) (int64, error) {
	if err := validateRecord(record); err != nil {
		return 0, err
	}

	id, err := s.attendanceStudentRepo.CreateAttendanceStudent(ctx, record)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateAttendanceEntry) {
			return 0, apperrors.ErrDuplicateAttendanceEntry
		}
		return 0, fmt.Errorf("error creating attendance record: %w", err)
	}
	return id, nil
}

// GetByAttendance retrieves the outcome rows of one roll-call event
func (s *attendanceStudentServiceImpl) GetByAttendance(ctx context.Context, attendanceID int64) ([]models.AttendanceStudentRecord, error) {
	if attendanceID <= 0 {
		return nil, fmt.Errorf("%w: invalid attendance ID", apperrors.ErrValidationFailed)
	}

	records, err := s.attendanceStudentRepo.GetByAttendance(ctx, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}
	return records, nil
}

// UpdateAttendanceStudent updates one outcome row
func (s *attendanceStudentServiceImpl) UpdateAttendanceStudent(ctx context.Context, record *models.AttendanceStudent) error {
	if err := validateRecord(record); err != nil {
		return err
	}
	if record.ID <= 0 {
		return fmt.Errorf("%w: invalid record ID", apperrors.ErrValidationFailed)
	}

	err := s.attendanceStudentRepo.UpdateAttendanceStudent(ctx, record)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttendanceStudentNotFound) {
			return apperrors.ErrAttendanceStudentNotFound
		}
		return fmt.Errorf("error updating attendance record: %w", err)
	}
	return nil
}

// DeleteAttendanceStudent deletes one outcome row by ID
func (s *attendanceStudentServiceImpl) DeleteAttendanceStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid record ID", apperrors.ErrValidationFailed)
	}

	err := s.attendanceStudentRepo.DeleteAttendanceStudent(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttendanceStudentNotFound) {
			return apperrors.ErrAttendanceStudentNotFound
		}
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	return nil
}
