package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

func TestScheduleLifecycle(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")

	created, err := env.schedules.CreateSchedule(ctx, &models.Schedule{
		ClassroomID: classroom.ID,
		WeekDay:     "Segunda-feira",
		StartTime:   "08:00",
		EndTime:     "09:40",
	})
	require.NoError(t, err)

	schedules, err := env.schedules.GetSchedulesByClassroom(ctx, classroom.ID)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Segunda-feira", schedules[0].WeekDay)
	assert.Equal(t, "Turma A", schedules[0].ClassroomName)

	created.WeekDay = "Terça-feira"
	require.NoError(t, env.schedules.UpdateSchedule(ctx, created))

	schedules, err = env.schedules.GetSchedulesByClassroom(ctx, classroom.ID)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Terça-feira", schedules[0].WeekDay)

	require.NoError(t, env.schedules.DeleteSchedule(ctx, created.ID))
	assert.ErrorIs(t, env.schedules.DeleteSchedule(ctx, created.ID), apperrors.ErrScheduleNotFound)
}

func TestCreateScheduleRejectsBadTimes(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")

	for _, start := range []string{"8:00", "24:00", "08:61", "0800", ""} {
		_, err := env.schedules.CreateSchedule(ctx, &models.Schedule{
			ClassroomID: classroom.ID,
			WeekDay:     "Segunda-feira",
			StartTime:   start,
			EndTime:     "09:40",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "start time %q", start)
	}
}
