package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/models"
)

func TestRollCallScreenSavesMarkedStudentsOnly(t *testing.T) {
	svcs := setupScreens(t)
	ctx := context.Background()

	classroom, err := svcs.classrooms.CreateClassroom(ctx, "Turma A")
	require.NoError(t, err)
	ana, err := svcs.students.CreateStudent(ctx, classroom.ID, "Ana")
	require.NoError(t, err)
	bruno, err := svcs.students.CreateStudent(ctx, classroom.ID, "Bruno")
	require.NoError(t, err)
	_, err = svcs.students.CreateStudent(ctx, classroom.ID, "Carla")
	require.NoError(t, err)

	screen := NewRollCallScreen(svcs.students, svcs.attendances, classroom.ID)
	require.NoError(t, screen.Load(ctx))
	assert.Len(t, screen.Students(), 3)

	screen.SetDate("15/03/2026")
	screen.Mark(ana.ID, models.AttendanceStatusPresent)
	screen.Mark(bruno.ID, models.AttendanceStatusAbsent)
	// Carla stays unmarked and gets no row.

	attendance, err := screen.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "15/03/2026", attendance.Date)

	records, err := svcs.attendanceRecords.GetByAttendance(ctx, attendance.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ana", records[0].StudentName)
	assert.Equal(t, "Bruno", records[1].StudentName)

	// Marks clear after a successful save.
	assert.Equal(t, models.AttendanceStatus(""), screen.StatusFor(ana.ID))
}

func TestRollCallScreenUnmark(t *testing.T) {
	svcs := setupScreens(t)
	ctx := context.Background()

	classroom, err := svcs.classrooms.CreateClassroom(ctx, "Turma A")
	require.NoError(t, err)
	ana, err := svcs.students.CreateStudent(ctx, classroom.ID, "Ana")
	require.NoError(t, err)

	screen := NewRollCallScreen(svcs.students, svcs.attendances, classroom.ID)
	require.NoError(t, screen.Load(ctx))

	screen.Mark(ana.ID, models.AttendanceStatusPresent)
	assert.Equal(t, models.AttendanceStatusPresent, screen.StatusFor(ana.ID))
	screen.Unmark(ana.ID)
	assert.Equal(t, models.AttendanceStatus(""), screen.StatusFor(ana.ID))

	attendance, err := screen.Save(ctx)
	require.NoError(t, err)

	records, err := svcs.attendanceRecords.GetByAttendance(ctx, attendance.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}
