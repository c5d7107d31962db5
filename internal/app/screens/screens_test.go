package screens

import (
	"context"
	"testing"
	"time"

	"github.com/psantos/classdiary/internal/app/migrations"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/app/services"
	"github.com/psantos/classdiary/internal/db"
)

// testServices is the service graph the screens are driven against,
// backed by a fresh in-memory database.
type testServices struct {
	classrooms        services.ClassroomService
	students          services.StudentService
	attendances       services.AttendanceService
	attendanceRecords services.AttendanceStudentService
	assessments       services.AssessmentService
	scores            services.ScoreService
	activities        services.ActivityService
	schedules         services.ScheduleService
}

func setupScreens(t *testing.T) *testServices {
	t.Helper()

	database, err := db.Open(db.Options{Path: ":memory:", BusyTimeout: time.Second})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := migrations.NewMigrator(database.DB).Migrate(context.Background()); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	repos := repositories.NewRepositories(database)
	return &testServices{
		classrooms: services.NewClassroomService(repos.ClassroomRepository),
		students:   services.NewStudentService(repos.StudentRepository, repos.ClassroomRepository),
		attendances: services.NewAttendanceService(
			database,
			repos.AttendanceRepository,
			repos.AttendanceStudentRepository,
			repos.ClassroomRepository,
		),
		attendanceRecords: services.NewAttendanceStudentService(repos.AttendanceStudentRepository),
		assessments: services.NewAssessmentService(
			database,
			repos.AssessmentRepository,
			repos.ScoreRepository,
			repos.StudentRepository,
			repos.ClassroomRepository,
		),
		scores: services.NewScoreService(
			repos.ScoreRepository,
			repos.AssessmentRepository,
			repos.StudentRepository,
		),
		activities: services.NewActivityService(repos.ActivityRepository, repos.ClassroomRepository),
		schedules:  services.NewScheduleService(repos.ScheduleRepository, repos.ClassroomRepository),
	}
}
