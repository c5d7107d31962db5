// Package seed fills an empty database with a small demo dataset, gated by
// the seed.demo_data config flag. Startup proceeds even when seeding fails.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/psantos/classdiary/internal/app/models"
	appRepos "github.com/psantos/classdiary/internal/app/repositories"
)

// CreateDemoData inserts two classrooms, a few students, an activity and a
// schedule so the screens have something to show on first launch.
// It is skipped entirely when any classroom already exists.
func CreateDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	existing, err := repos.ClassroomRepository.GetAllClassrooms(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing classrooms")
		return err
	}
	if len(existing) > 0 {
		lgr.Info().Int("classrooms", len(existing)).Msg("Demo data skipped, database is not empty")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")
	var finalErr error

	classroomA := &appModels.Classroom{Name: "Turma A"}
	classroomAID, err := repos.ClassroomRepository.CreateClassroom(ctx, classroomA)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo classroom Turma A")
		finalErr = errors.Join(finalErr, err)
	}

	classroomB := &appModels.Classroom{Name: "Turma B"}
	if _, err := repos.ClassroomRepository.CreateClassroom(ctx, classroomB); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo classroom Turma B")
		finalErr = errors.Join(finalErr, err)
	}

	if classroomAID > 0 {
		for _, name := range []string{"Ana", "Bruno", "Carla"} {
			student := &appModels.Student{ClassroomID: classroomAID, Name: name}
			if _, err := repos.StudentRepository.CreateStudent(ctx, student); err != nil {
				lgr.Error().Err(err).Str("student", name).Msg("Error creating demo student")
				finalErr = errors.Join(finalErr, err)
			}
		}

		activity := &appModels.Activity{
			ClassroomID: classroomAID,
			Description: "Trabalho em grupo sobre frações",
			Status:      appModels.ActivityStatusOpen,
		}
		if _, err := repos.ActivityRepository.CreateActivity(ctx, activity); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo activity")
			finalErr = errors.Join(finalErr, err)
		}

		schedule := &appModels.Schedule{
			ClassroomID: classroomAID,
			WeekDay:     "Segunda-feira",
			StartTime:   "08:00",
			EndTime:     "09:40",
		}
		if _, err := repos.ScheduleRepository.CreateSchedule(ctx, schedule); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo schedule")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr != nil {
		return finalErr
	}
	lgr.Info().Msg("Demo data seeded")
	return nil
}
