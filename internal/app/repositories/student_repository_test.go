package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

func TestStudentRepositoryCreateSetsDefaultFeedback(t *testing.T) {
	database := setupTestDB(t)
	repo := NewStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")

	id, err := repo.CreateStudent(ctx, &models.Student{ClassroomID: classroomID, Name: "Ana"})
	require.NoError(t, err)

	student, err := repo.GetStudentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", student.Name)
	assert.Equal(t, models.DefaultStudentFeedback, student.Feedback)
}

func TestStudentRepositoryTotals(t *testing.T) {
	database := setupTestDB(t)
	repo := NewStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")
	anaID := createTestStudent(t, database, classroomID, "Ana")
	brunoID := createTestStudent(t, database, classroomID, "Bruno")

	// Two roll calls: Ana present twice, Bruno present once and absent once.
	createTestAttendance(t, database, classroomID, "01/03/2026", []models.RollCallEntry{
		{StudentID: anaID, Status: models.AttendanceStatusPresent},
		{StudentID: brunoID, Status: models.AttendanceStatusPresent},
	})
	createTestAttendance(t, database, classroomID, "02/03/2026", []models.RollCallEntry{
		{StudentID: anaID, Status: models.AttendanceStatusPresent},
		{StudentID: brunoID, Status: models.AttendanceStatusAbsent},
	})

	students, err := repo.GetStudentsByClassroom(ctx, classroomID)
	require.NoError(t, err)
	require.Len(t, students, 2)

	byName := make(map[string]models.StudentWithTotals, len(students))
	for _, student := range students {
		byName[student.Name] = student
	}

	assert.Equal(t, int64(2), byName["Ana"].TotalAttendance)
	assert.Equal(t, int64(0), byName["Ana"].TotalAbsence)
	assert.Equal(t, int64(1), byName["Bruno"].TotalAttendance)
	assert.Equal(t, int64(1), byName["Bruno"].TotalAbsence)
}

func TestStudentRepositoryTotalsStartAtZero(t *testing.T) {
	database := setupTestDB(t)
	repo := NewStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")
	createTestStudent(t, database, classroomID, "Carla")

	students, err := repo.GetStudentsByClassroom(ctx, classroomID)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, int64(0), students[0].TotalAttendance)
	assert.Equal(t, int64(0), students[0].TotalAbsence)
}

func TestStudentRepositoryDeleteLeavesAttendanceRows(t *testing.T) {
	database := setupTestDB(t)
	studentRepo := NewStudentRepository(database)
	_ = NewAttendanceStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")
	anaID := createTestStudent(t, database, classroomID, "Ana")
	attendanceID := createTestAttendance(t, database, classroomID, "01/03/2026", []models.RollCallEntry{
		{StudentID: anaID, Status: models.AttendanceStatusPresent},
	})

	// Deletes are single-row; foreign keys run unenforced by default, so the
	// outcome row survives its student.
	require.NoError(t, studentRepo.DeleteStudent(ctx, anaID))

	var count int
	err := database.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM Attendances_Students WHERE attendance_id = ?", attendanceID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStudentRepositoryUpdateNotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewStudentRepository(database)

	err := repo.UpdateStudent(context.Background(), &models.Student{ID: 999, ClassroomID: 1, Name: "Ana"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
