package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

func TestCreateAssessmentSeedsZeroScores(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")
	env.createStudent(t, classroom.ID, "Ana")
	env.createStudent(t, classroom.ID, "Bruno")

	assessment, err := env.assessments.CreateAssessment(ctx, classroom.ID, "AV1", 6.0)
	require.NoError(t, err)
	assert.Greater(t, assessment.ID, int64(0))

	scores, err := env.scores.GetScoresByAssessment(ctx, assessment.ID)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	for _, score := range scores {
		assert.Equal(t, 0.0, score.Score.Score)
	}
}

func TestCreateAssessmentEmptyClassroom(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")

	assessment, err := env.assessments.CreateAssessment(ctx, classroom.ID, "AV1", 6.0)
	require.NoError(t, err)

	scores, err := env.scores.GetScoresByAssessment(ctx, assessment.ID)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestCreateAssessmentUnknownClassroom(t *testing.T) {
	env := setupServices(t)

	_, err := env.assessments.CreateAssessment(context.Background(), 999, "AV1", 6.0)
	assert.ErrorIs(t, err, apperrors.ErrClassroomNotFound)
}

func TestCreateAssessmentValidation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")

	_, err := env.assessments.CreateAssessment(ctx, classroom.ID, "  ", 6.0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = env.assessments.CreateAssessment(ctx, classroom.ID, "AV1", -1.0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGradeSeededScore(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")
	env.createStudent(t, classroom.ID, "Ana")

	assessment, err := env.assessments.CreateAssessment(ctx, classroom.ID, "AV1", 6.0)
	require.NoError(t, err)

	scores, err := env.scores.GetScoresByAssessment(ctx, assessment.ID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 0.0, scores[0].Score.Score)

	require.NoError(t, env.scores.UpdateScore(ctx, scores[0].ID, 8.5))

	scores, err = env.scores.GetScoresByAssessment(ctx, assessment.ID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 8.5, scores[0].Score.Score)
}

func TestCreateScoreForLateEnrollee(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")
	env.createStudent(t, classroom.ID, "Ana")

	assessment, err := env.assessments.CreateAssessment(ctx, classroom.ID, "AV1", 6.0)
	require.NoError(t, err)

	// Bruno enrolls after the assessment was seeded; his row is added by hand.
	bruno := env.createStudent(t, classroom.ID, "Bruno")
	created, err := env.scores.CreateScore(ctx, &models.Score{
		AssessmentID: assessment.ID,
		StudentID:    bruno.ID,
		Score:        7.0,
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))

	scores, err := env.scores.GetScoresByAssessment(ctx, assessment.ID)
	require.NoError(t, err)
	assert.Len(t, scores, 2)

	// Seeding is not re-run, so adding him twice is a conflict.
	_, err = env.scores.CreateScore(ctx, &models.Score{
		AssessmentID: assessment.ID,
		StudentID:    bruno.ID,
		Score:        5.0,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateScore)
}

func TestUpdateAssessment(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")
	assessment, err := env.assessments.CreateAssessment(ctx, classroom.ID, "AV1", 6.0)
	require.NoError(t, err)

	assessment.Name = "AV1 - Recuperação"
	assessment.PassingScore = 5.0
	require.NoError(t, env.assessments.UpdateAssessment(ctx, assessment))

	assessments, err := env.assessments.GetAssessmentsByClassroom(ctx, classroom.ID)
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, "AV1 - Recuperação", assessments[0].Name)
	assert.Equal(t, 5.0, assessments[0].PassingScore)
	assert.Equal(t, "Turma A", assessments[0].ClassroomName)
}

func TestUpdateAssessmentTwiceLeavesStateUnchanged(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")
	assessment, err := env.assessments.CreateAssessment(ctx, classroom.ID, "AV1", 6.0)
	require.NoError(t, err)

	assessment.Name = "AV2"
	assessment.PassingScore = 7.0
	require.NoError(t, env.assessments.UpdateAssessment(ctx, assessment))
	require.NoError(t, env.assessments.UpdateAssessment(ctx, assessment))

	assessments, err := env.assessments.GetAssessmentsByClassroom(ctx, classroom.ID)
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, "AV2", assessments[0].Name)
	assert.Equal(t, 7.0, assessments[0].PassingScore)
}

func TestCreateScoreUnknownStudent(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	classroom := env.createClassroom(t, "Turma A")
	assessment, err := env.assessments.CreateAssessment(ctx, classroom.ID, "AV1", 6.0)
	require.NoError(t, err)

	_, err = env.scores.CreateScore(ctx, &models.Score{
		AssessmentID: assessment.ID,
		StudentID:    999,
		Score:        7.0,
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
