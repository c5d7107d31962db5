package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

func TestCreateActivityDefaultsToOpen(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")

	created, err := env.activities.CreateActivity(ctx, &models.Activity{
		ClassroomID: classroom.ID,
		Description: "Leitura do capítulo 3",
	})
	require.NoError(t, err)

	activities, err := env.activities.GetActivitiesByClassroom(ctx, classroom.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, created.ID, activities[0].ID)
	assert.Equal(t, models.ActivityStatusOpen, activities[0].Status)
	assert.Equal(t, "Turma A", activities[0].ClassroomName)
}

func TestActivityLifecycle(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")
	created, err := env.activities.CreateActivity(ctx, &models.Activity{
		ClassroomID: classroom.ID,
		Description: "Leitura do capítulo 3",
	})
	require.NoError(t, err)

	created.Status = models.ActivityStatusDone
	require.NoError(t, env.activities.UpdateActivity(ctx, created))

	activities, err := env.activities.GetActivitiesByClassroom(ctx, classroom.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityStatusDone, activities[0].Status)

	require.NoError(t, env.activities.DeleteActivity(ctx, created.ID))
	assert.ErrorIs(t, env.activities.DeleteActivity(ctx, created.ID), apperrors.ErrActivityNotFound)
}

func TestUpdateActivityRejectsUnknownStatus(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")
	created, err := env.activities.CreateActivity(ctx, &models.Activity{
		ClassroomID: classroom.ID,
		Description: "Leitura do capítulo 3",
	})
	require.NoError(t, err)

	created.Status = "pendente"
	assert.ErrorIs(t, env.activities.UpdateActivity(ctx, created), apperrors.ErrValidationFailed)
}
