package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

func TestClassroomRepositoryCRUD(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClassroomRepository(database)
	ctx := context.Background()

	idA, err := repo.CreateClassroom(ctx, &models.Classroom{Name: "Turma A"})
	require.NoError(t, err)
	assert.Greater(t, idA, int64(0))

	idB, err := repo.CreateClassroom(ctx, &models.Classroom{Name: "Turma B"})
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)

	classrooms, err := repo.GetAllClassrooms(ctx)
	require.NoError(t, err)
	require.Len(t, classrooms, 2)

	classroom, err := repo.GetClassroomByID(ctx, idA)
	require.NoError(t, err)
	assert.Equal(t, "Turma A", classroom.Name)

	err = repo.UpdateClassroom(ctx, &models.Classroom{ID: idA, Name: "Turma A - Manhã"})
	require.NoError(t, err)

	classroom, err = repo.GetClassroomByID(ctx, idA)
	require.NoError(t, err)
	assert.Equal(t, "Turma A - Manhã", classroom.Name)

	require.NoError(t, repo.DeleteClassroom(ctx, idA))

	_, err = repo.GetClassroomByID(ctx, idA)
	assert.ErrorIs(t, err, apperrors.ErrClassroomNotFound)

	classrooms, err = repo.GetAllClassrooms(ctx)
	require.NoError(t, err)
	assert.Len(t, classrooms, 1)
}

func TestClassroomRepositoryNotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClassroomRepository(database)
	ctx := context.Background()

	_, err := repo.GetClassroomByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrClassroomNotFound)

	err = repo.UpdateClassroom(ctx, &models.Classroom{ID: 999, Name: "Turma X"})
	assert.ErrorIs(t, err, apperrors.ErrClassroomNotFound)

	err = repo.DeleteClassroom(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrClassroomNotFound)
}

func TestDeleteWithDependentsBlockedWhenForeignKeysOn(t *testing.T) {
	database := setupTestDBForeignKeys(t)
	classroomRepo := NewClassroomRepository(database)
	studentRepo := NewStudentRepository(database)
	ctx := context.Background()

	classroomID := createTestClassroom(t, database, "Turma A")
	anaID := createTestStudent(t, database, classroomID, "Ana")
	createTestAttendance(t, database, classroomID, "01/09/2026", []models.RollCallEntry{
		{StudentID: anaID, Status: models.AttendanceStatusPresent},
	})

	err := classroomRepo.DeleteClassroom(ctx, classroomID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = studentRepo.DeleteStudent(ctx, anaID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	classroom, err := classroomRepo.GetClassroomByID(ctx, classroomID)
	require.NoError(t, err)
	assert.Equal(t, "Turma A", classroom.Name)
}
