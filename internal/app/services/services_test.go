package services

import (
	"context"
	"testing"
	"time"

	"github.com/psantos/classdiary/internal/app/migrations"
	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/db"
)

// testEnv bundles a fresh in-memory database with the full service graph.
type testEnv struct {
	database *db.DB
	repos    *repositories.Repositories

	classrooms        ClassroomService
	students          StudentService
	attendances       AttendanceService
	attendanceRecords AttendanceStudentService
	assessments       AssessmentService
	scores            ScoreService
	activities        ActivityService
	schedules         ScheduleService
}

func setupServices(t *testing.T) *testEnv {
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
	return &testEnv{
		database: database,
		repos:    repos,

		classrooms: NewClassroomService(repos.ClassroomRepository),
		students:   NewStudentService(repos.StudentRepository, repos.ClassroomRepository),
		attendances: NewAttendanceService(
			database,
			repos.AttendanceRepository,
			repos.AttendanceStudentRepository,
			repos.ClassroomRepository,
		),
		attendanceRecords: NewAttendanceStudentService(repos.AttendanceStudentRepository),
		assessments: NewAssessmentService(
			database,
			repos.AssessmentRepository,
			repos.ScoreRepository,
			repos.StudentRepository,
			repos.ClassroomRepository,
		),
		scores:     NewScoreService(repos.ScoreRepository, repos.AssessmentRepository, repos.StudentRepository),
		activities: NewActivityService(repos.ActivityRepository, repos.ClassroomRepository),
		schedules:  NewScheduleService(repos.ScheduleRepository, repos.ClassroomRepository),
	}
}

func (e *testEnv) createClassroom(t *testing.T, name string) *models.Classroom {
	t.Helper()

	classroom, err := e.classrooms.CreateClassroom(context.Background(), name)
	if err != nil {
		t.Fatalf("creating classroom %q: %v", name, err)
	}
	return classroom
}

func (e *testEnv) createStudent(t *testing.T, classroomID int64, name string) *models.Student {
	t.Helper()

	student, err := e.students.CreateStudent(context.Background(), classroomID, name)
	if err != nil {
		t.Fatalf("creating student %q: %v", name, err)
	}
	return student
}
