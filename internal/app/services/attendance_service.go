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
	"github.com/psantos/classdiary/internal/pkg/helpers"
)

// AttendanceService defines the interface for roll-call operations
type AttendanceService interface {
	// CreateAttendance saves a roll call: the attendance event plus one
	// outcome row per supplied entry, in one transaction. Students the
	// teacher left unmarked get no row.
	CreateAttendance(ctx context.Context, classroomID int64, date string, entries []models.RollCallEntry) (*models.Attendance, error)
	GetAttendancesByClassroom(ctx context.Context, classroomID int64) ([]models.Attendance, error)
	UpdateAttendance(ctx context.Context, attendance *models.Attendance) error
	DeleteAttendance(ctx context.Context, id int64) error
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	database              *db.DB
	attendanceRepo        *repositories.AttendanceRepository
	attendanceStudentRepo *repositories.AttendanceStudentRepository
	classroomRepo         *repositories.ClassroomRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	database *db.DB,
	attendanceRepo *repositories.AttendanceRepository,
	attendanceStudentRepo *repositories.AttendanceStudentRepository,
	classroomRepo *repositories.ClassroomRepository,
) AttendanceService {
	return &attendanceServiceImpl{
		database:              database,
		attendanceRepo:        attendanceRepo,
		attendanceStudentRepo: attendanceStudentRepo,
		classroomRepo:         classroomRepo,
	}
}

// CreateAttendance saves a roll call atomically. If any outcome row fails
// the attendance event is rolled back too, so no orphaned parent survives
// a partial failure.
func (s *attendanceServiceImpl) CreateAttendance(ctx context.Context, classroomID int64, date string, entries []models.RollCallEntry) (*models.Attendance, error) {
	if _, err := s.classroomRepo.GetClassroomByID(ctx, classroomID); err != nil {
		if errors.Is(err, apperrors.ErrClassroomNotFound) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error checking classroom: %w", err)
	}

	if strings.TrimSpace(date) == "" {
		date = helpers.Today()
	}
	for _, entry := range entries {
		if !entry.Status.Valid() {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAttendanceStatus, entry.Status)
		}
	}

	attendance := &models.Attendance{ClassroomID: classroomID, Date: date}
	err := s.database.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		id, err := s.attendanceRepo.CreateAttendanceTx(ctx, tx, attendance)
		if err != nil {
			return err
		}
		attendance.ID = id
		return s.attendanceStudentRepo.CreateManyTx(ctx, tx, id, entries)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) ||
			errors.Is(err, apperrors.ErrInvalidAttendanceStatus) ||
			errors.Is(err, apperrors.ErrDuplicateAttendanceEntry) {
			return nil, err
		}
		return nil, fmt.Errorf("error saving roll call: %w", err)
	}

	return attendance, nil
}

// GetAttendancesByClassroom retrieves a classroom's roll-call events
func (s *attendanceServiceImpl) GetAttendancesByClassroom(ctx context.Context, classroomID int64) ([]models.Attendance, error) {
	if classroomID <= 0 {
		return nil, fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	attendances, err := s.attendanceRepo.GetAttendancesByClassroom(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendances: %w", err)
	}
	return attendances, nil
}

// UpdateAttendance updates an existing roll-call event
func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, attendance *models.Attendance) error {
	if attendance == nil || attendance.ID <= 0 {
		return fmt.Errorf("%w: invalid attendance ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(attendance.Date) == "" {
		return fmt.Errorf("%w: date cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.attendanceRepo.UpdateAttendance(ctx, attendance)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttendanceNotFound) {
			return apperrors.ErrAttendanceNotFound
		}
		return fmt.Errorf("error updating attendance: %w", err)
	}
	return nil
}

// DeleteAttendance deletes a roll-call event by ID
func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid attendance ID", apperrors.ErrValidationFailed)
	}

	err := s.attendanceRepo.DeleteAttendance(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttendanceNotFound) {
			return apperrors.ErrAttendanceNotFound
		}
		return fmt.Errorf("error deleting attendance: %w", err)
	}
	return nil
}
