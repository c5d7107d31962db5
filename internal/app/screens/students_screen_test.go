package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/models"
)

func TestStudentsScreenAddAndFilter(t *testing.T) {
	svcs := setupScreens(t)
	ctx := context.Background()

	classroom, err := svcs.classrooms.CreateClassroom(ctx, "Turma A")
	require.NoError(t, err)

	screen := NewStudentsScreen(svcs.students, classroom.ID)
	require.NoError(t, screen.Add(ctx, "Ana"))
	require.NoError(t, screen.Add(ctx, "Bruno"))

	assert.Len(t, screen.Filtered(), 2)
	assert.Equal(t, models.DefaultStudentFeedback, screen.Filtered()[0].Feedback)

	screen.SetSearch("bru")
	filtered := screen.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Bruno", filtered[0].Name)
}

func TestStudentsScreenShowsTotals(t *testing.T) {
	svcs := setupScreens(t)
	ctx := context.Background()

	classroom, err := svcs.classrooms.CreateClassroom(ctx, "Turma A")
	require.NoError(t, err)
	ana, err := svcs.students.CreateStudent(ctx, classroom.ID, "Ana")
	require.NoError(t, err)

	_, err = svcs.attendances.CreateAttendance(ctx, classroom.ID, "01/03/2026", []models.RollCallEntry{
		{StudentID: ana.ID, Status: models.AttendanceStatusPresent},
	})
	require.NoError(t, err)
	_, err = svcs.attendances.CreateAttendance(ctx, classroom.ID, "02/03/2026", []models.RollCallEntry{
		{StudentID: ana.ID, Status: models.AttendanceStatusAbsent},
	})
	require.NoError(t, err)

	screen := NewStudentsScreen(svcs.students, classroom.ID)
	require.NoError(t, screen.Load(ctx))

	students := screen.Filtered()
	require.Len(t, students, 1)
	assert.Equal(t, int64(1), students[0].TotalAttendance)
	assert.Equal(t, int64(1), students[0].TotalAbsence)
}

func TestStudentsScreenUpdateFeedback(t *testing.T) {
	svcs := setupScreens(t)
	ctx := context.Background()

	classroom, err := svcs.classrooms.CreateClassroom(ctx, "Turma A")
	require.NoError(t, err)

	screen := NewStudentsScreen(svcs.students, classroom.ID)
	require.NoError(t, screen.Add(ctx, "Ana"))
	student := screen.Filtered()[0]

	require.NoError(t, screen.Update(ctx, student.ID, "Ana", "Participa bastante das aulas."))

	updated := screen.Filtered()[0]
	assert.Equal(t, "Participa bastante das aulas.", updated.Feedback)
}
