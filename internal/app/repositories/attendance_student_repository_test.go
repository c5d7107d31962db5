package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

func TestCreateManyTxWritesOneRowPerEntry(t *testing.T) {
	database := setupTestDB(t)
	recordRepo := NewAttendanceStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")
	anaID := createTestStudent(t, database, classroomID, "Ana")
	brunoID := createTestStudent(t, database, classroomID, "Bruno")
	createTestStudent(t, database, classroomID, "Carla") // not marked

	attendanceID := createTestAttendance(t, database, classroomID, "01/03/2026", []models.RollCallEntry{
		{StudentID: anaID, Status: models.AttendanceStatusPresent},
		{StudentID: brunoID, Status: models.AttendanceStatusAbsent},
	})

	records, err := recordRepo.GetByAttendance(ctx, attendanceID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Rows come back ordered by student name.
	assert.Equal(t, "Ana", records[0].StudentName)
	assert.Equal(t, models.AttendanceStatusPresent, records[0].Status)
	assert.Equal(t, "Bruno", records[1].StudentName)
	assert.Equal(t, models.AttendanceStatusAbsent, records[1].Status)
}

func TestCreateManyTxRejectsInvalidEntries(t *testing.T) {
	database := setupTestDB(t)
	recordRepo := NewAttendanceStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")
	anaID := createTestStudent(t, database, classroomID, "Ana")
	attendanceID := createTestAttendance(t, database, classroomID, "01/03/2026", nil)

	err := database.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return recordRepo.CreateManyTx(ctx, tx, attendanceID, []models.RollCallEntry{
			{StudentID: anaID, Status: models.AttendanceStatusPresent},
			{StudentID: 0, Status: models.AttendanceStatusAbsent},
		})
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// One bad entry aborts the whole batch: no rows written.
	records, err := recordRepo.GetByAttendance(ctx, attendanceID)
	require.NoError(t, err)
	assert.Empty(t, records)

	err = database.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return recordRepo.CreateManyTx(ctx, tx, attendanceID, []models.RollCallEntry{
			{StudentID: anaID, Status: "faltou"},
		})
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAttendanceStatus)
}

func TestCreateAttendanceStudentDuplicate(t *testing.T) {
	database := setupTestDB(t)
	recordRepo := NewAttendanceStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")
	anaID := createTestStudent(t, database, classroomID, "Ana")
	attendanceID := createTestAttendance(t, database, classroomID, "01/03/2026", []models.RollCallEntry{
		{StudentID: anaID, Status: models.AttendanceStatusPresent},
	})

	_, err := recordRepo.CreateAttendanceStudent(ctx, &models.AttendanceStudent{
		AttendanceID: attendanceID,
		StudentID:    anaID,
		Status:       models.AttendanceStatusAbsent,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateAttendanceEntry)
}

func TestUpdateAttendanceStudentFlipsStatus(t *testing.T) {
	database := setupTestDB(t)
	recordRepo := NewAttendanceStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")
	anaID := createTestStudent(t, database, classroomID, "Ana")
	attendanceID := createTestAttendance(t, database, classroomID, "01/03/2026", []models.RollCallEntry{
		{StudentID: anaID, Status: models.AttendanceStatusAbsent},
	})

	records, err := recordRepo.GetByAttendance(ctx, attendanceID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	err = recordRepo.UpdateAttendanceStudent(ctx, &models.AttendanceStudent{
		ID:           records[0].ID,
		AttendanceID: attendanceID,
		StudentID:    anaID,
		Status:       models.AttendanceStatusPresent,
	})
	require.NoError(t, err)

	records, err = recordRepo.GetByAttendance(ctx, attendanceID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceStatusPresent, records[0].Status)
}
